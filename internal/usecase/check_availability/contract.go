package check_availability

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/availability"
)

// AccommodationRepository resolves the accommodation named by the guest
type AccommodationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	GetByName(ctx context.Context, name string) (*domain.Accommodation, error)
}

// AvailabilityService computes occupied and conflicting ranges
type AvailabilityService interface {
	Check(ctx context.Context, accommodationID int64, candidate *domain.DateRange) (*availability.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
