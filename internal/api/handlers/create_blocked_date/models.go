package create_blocked_date

import (
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates/models"
)

// CreateBlockedDateRequest HTTP request model; end_date is exclusive
type CreateBlockedDateRequest struct {
	AccommodationID int64   `json:"accommodation_id" validate:"required,gt=0"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason          *string `json:"reason" validate:"omitempty,max=500"`
}

type CreateBlockedDateResponse struct {
	Success     bool                        `json:"success"`
	ID          int64                       `json:"id"`
	BlockedDate *models.BlockedDateResponse `json:"blocked_date"`
}

func (r *CreateBlockedDateRequest) ToServiceRequest() *models.CreateBlockedDateRequest {
	return &models.CreateBlockedDateRequest{
		AccommodationID: r.AccommodationID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Reason:          r.Reason,
	}
}
