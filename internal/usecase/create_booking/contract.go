package create_booking

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// BookingRepository inserts bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AccommodationRepository resolves accommodations named by the public form
type AccommodationRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Accommodation, error)
}

// AvailabilityChecker finds the first occupied range overlapping a stay
type AvailabilityChecker interface {
	FirstConflict(ctx context.Context, accommodationID int64, candidate domain.DateRange) (*domain.OccupiedRange, error)
}

// TransactionManager runs the check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging dependency
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
