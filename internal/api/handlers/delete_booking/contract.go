package delete_booking

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, identity domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
