package list_images

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

type ImageService interface {
	List(ctx context.Context, accommodationID *int64) (*models.ImageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
