package models

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// UpdateAccommodationRequest is a partial update; nil fields stay untouched
type UpdateAccommodationRequest struct {
	ID           int64
	Name         *string
	Descriptions map[string]string
	MaxGuests    *int
	Amenities    *[]string
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

type AccommodationResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	DescriptionPT string          `json:"description_pt"`
	DescriptionEN string          `json:"description_en"`
	DescriptionFR string          `json:"description_fr"`
	DescriptionDE string          `json:"description_de"`
	DescriptionES string          `json:"description_es"`
	MaxGuests     int             `json:"max_guests"`
	Amenities     []string        `json:"amenities"`
	ImageURL      string          `json:"image_url"`
	PrimaryImage  string          `json:"primary_image"`
	Images        []ImageResponse `json:"images"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type AccommodationListResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
}

func FromDomainImage(img *domain.AccommodationImage) ImageResponse {
	return ImageResponse{
		ID:              img.ID,
		AccommodationID: img.AccommodationID,
		URL:             img.URL,
		DisplayOrder:    img.DisplayOrder,
		Caption:         img.Caption,
		IsPrimary:       img.IsPrimary,
		CreatedAt:       img.CreatedAt,
	}
}

func FromDomainAccommodation(a *domain.Accommodation) *AccommodationResponse {
	resp := &AccommodationResponse{
		ID:            a.ID,
		Name:          a.Name,
		DescriptionPT: a.Descriptions["pt"],
		DescriptionEN: a.Descriptions["en"],
		DescriptionFR: a.Descriptions["fr"],
		DescriptionDE: a.Descriptions["de"],
		DescriptionES: a.Descriptions["es"],
		MaxGuests:     a.MaxGuests,
		Amenities:     a.Amenities,
		ImageURL:      a.ImageURL,
		PrimaryImage:  a.PrimaryImageURL(),
		Images:        make([]ImageResponse, 0, len(a.Images)),
		UpdatedAt:     a.UpdatedAt,
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	for i := range a.Images {
		resp.Images = append(resp.Images, FromDomainImage(&a.Images[i]))
	}
	return resp
}
