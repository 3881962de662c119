package update_booking

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
	updateBooking "github.com/Liandro13/method-passion-site/internal/usecase/update_booking"
)

type UpdateBookingUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, req *updateBooking.Request) (*updateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
