package availability

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// BookingRepository yields the stays of confirmed bookings
type BookingRepository interface {
	ListConfirmedRanges(ctx context.Context, accommodationID int64) ([]domain.OccupiedRange, error)
}

// BlockedDateRepository yields admin-blocked ranges
type BlockedDateRepository interface {
	ListRanges(ctx context.Context, accommodationID int64) ([]domain.OccupiedRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
