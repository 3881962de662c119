package update_accommodation

import (
	"github.com/Liandro13/method-passion-site/internal/service/accommodations/models"
)

// UpdateAccommodationRequest HTTP request model. Absent fields are left untouched.
type UpdateAccommodationRequest struct {
	ID            int64     `json:"id" validate:"required,gt=0"`
	Name          *string   `json:"name" validate:"omitempty,min=1,max=200"`
	DescriptionPT *string   `json:"description_pt" validate:"omitempty,max=10000"`
	DescriptionEN *string   `json:"description_en" validate:"omitempty,max=10000"`
	DescriptionFR *string   `json:"description_fr" validate:"omitempty,max=10000"`
	DescriptionDE *string   `json:"description_de" validate:"omitempty,max=10000"`
	DescriptionES *string   `json:"description_es" validate:"omitempty,max=10000"`
	MaxGuests     *int      `json:"max_guests" validate:"omitempty,gt=0,lte=20"`
	Amenities     *[]string `json:"amenities" validate:"omitempty,max=100,dive,max=200"`
}

type UpdateAccommodationResponse struct {
	Success       bool                          `json:"success"`
	Accommodation *models.AccommodationResponse `json:"accommodation"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateAccommodationRequest) ToServiceRequest() *models.UpdateAccommodationRequest {
	descriptions := make(map[string]string)
	for lang, text := range map[string]*string{
		"pt": r.DescriptionPT,
		"en": r.DescriptionEN,
		"fr": r.DescriptionFR,
		"de": r.DescriptionDE,
		"es": r.DescriptionES,
	} {
		if text != nil {
			descriptions[lang] = *text
		}
	}

	return &models.UpdateAccommodationRequest{
		ID:           r.ID,
		Name:         r.Name,
		Descriptions: descriptions,
		MaxGuests:    r.MaxGuests,
		Amenities:    r.Amenities,
	}
}
