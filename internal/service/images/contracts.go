package images

import (
	"context"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type ImageRepository interface {
	List(ctx context.Context, accommodationID *int64) ([]*domain.AccommodationImage, error)
	GetByID(ctx context.Context, id int64) (*domain.AccommodationImage, error)
	First(ctx context.Context, accommodationID int64) (*domain.AccommodationImage, error)
	NextDisplayOrder(ctx context.Context, accommodationID int64) (next int, count int, err error)
	Create(ctx context.Context, img *domain.AccommodationImage) (*domain.AccommodationImage, error)
	UpdateMetadata(ctx context.Context, id int64, displayOrder *int, caption *string) error
	SetDisplayOrder(ctx context.Context, id int64, displayOrder int) error
	ClearPrimary(ctx context.Context, accommodationID int64) error
	MarkPrimary(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type AccommodationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
}

// BlobStore keeps the image bytes
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) (*domain.ImageFile, error)
	Delete(ctx context.Context, key string) error
}

// ImageCache is an optional read-through cache in front of the blob store
type ImageCache interface {
	Get(ctx context.Context, key string) (*domain.ImageFile, bool, error)
	Set(ctx context.Context, key string, file *domain.ImageFile) error
	Invalidate(ctx context.Context, key string) error
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
