package image_file

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type ImageService interface {
	Open(ctx context.Context, key string) (*domain.ImageFile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
