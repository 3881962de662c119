package booking

import (
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
)

// DBExecutor is shared with dbmetrics so *sql.DB, *dbmetrics.DB and transactions all fit
type DBExecutor = dbmetrics.DBExecutor
