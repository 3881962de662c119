package list_accommodations

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/accommodations/models"
)

type AccommodationService interface {
	List(ctx context.Context) (*models.AccommodationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
