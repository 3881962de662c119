package blockeddates

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
