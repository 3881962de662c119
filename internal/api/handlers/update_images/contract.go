package update_images

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

type ImageService interface {
	Update(ctx context.Context, req *models.UpdateImageRequest) (*models.ImageResponse, error)
	Reorder(ctx context.Context, ids []int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
