package upload_image

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

type ImageService interface {
	Upload(ctx context.Context, req *models.UploadImageRequest) (*models.ImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
