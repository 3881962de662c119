package team_bookings

import (
	"context"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/bookings/models"
)

type BookingService interface {
	ListUpcoming(ctx context.Context, identity domain.Identity, today time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
