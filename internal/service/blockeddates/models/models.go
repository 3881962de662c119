package models

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type ListBlockedDatesRequest struct {
	AccommodationID *int64
}

type CreateBlockedDateRequest struct {
	AccommodationID int64
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD, exclusive
	Reason          *string
}

type BlockedDateResponse struct {
	ID                int64     `json:"id"`
	AccommodationID   int64     `json:"accommodation_id"`
	AccommodationName string    `json:"accommodation_name,omitempty"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Reason            string    `json:"reason"`
	CreatedAt         time.Time `json:"created_at"`
}

type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
}

func FromDomainBlockedDate(d *domain.BlockedDate) *BlockedDateResponse {
	if d == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:                d.ID,
		AccommodationID:   d.AccommodationID,
		AccommodationName: d.AccommodationName,
		StartDate:         d.StartDate.Format(domain.DateFormat),
		EndDate:           d.EndDate.Format(domain.DateFormat),
		Reason:            d.Reason,
		CreatedAt:         d.CreatedAt,
	}
}
