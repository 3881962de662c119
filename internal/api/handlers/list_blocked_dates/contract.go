package list_blocked_dates

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates/models"
)

type BlockedDateService interface {
	List(ctx context.Context, identity domain.Identity, req *models.ListBlockedDatesRequest) (*models.BlockedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
