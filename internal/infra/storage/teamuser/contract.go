package teamuser

import "github.com/Liandro13/method-passion-site/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
