package create_blocked_date

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates/models"
)

type BlockedDateService interface {
	Create(ctx context.Context, identity domain.Identity, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
