package accommodations

import (
	"context"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type AccommodationRepository interface {
	List(ctx context.Context) ([]*domain.Accommodation, error)
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	Update(ctx context.Context, id int64, patch domain.AccommodationPatch, now time.Time) error
}

type ImageRepository interface {
	List(ctx context.Context, accommodationID *int64) ([]*domain.AccommodationImage, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
