package models

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type UploadImageRequest struct {
	AccommodationID int64
	ContentType     string
	Caption         string
	Body            []byte
}

// UpdateImageRequest changes one image; nil fields stay untouched
type UpdateImageRequest struct {
	ID           int64
	DisplayOrder *int
	Caption      *string
	IsPrimary    *bool
}

type ImageResponse struct {
	ID              int64     `json:"id"`
	AccommodationID int64     `json:"accommodation_id"`
	URL             string    `json:"url"`
	DisplayOrder    int       `json:"display_order"`
	Caption         string    `json:"caption"`
	IsPrimary       bool      `json:"is_primary"`
	CreatedAt       time.Time `json:"created_at"`
}

type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

func FromDomainImage(img *domain.AccommodationImage) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{
		ID:              img.ID,
		AccommodationID: img.AccommodationID,
		URL:             img.URL,
		DisplayOrder:    img.DisplayOrder,
		Caption:         img.Caption,
		IsPrimary:       img.IsPrimary,
		CreatedAt:       img.CreatedAt,
	}
}
