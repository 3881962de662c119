package update_accommodation

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/accommodations/models"
)

type AccommodationService interface {
	Update(ctx context.Context, req *models.UpdateAccommodationRequest) (*models.AccommodationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
