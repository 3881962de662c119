package booking_requests

import (
	"strings"

	"github.com/Liandro13/method-passion-site/internal/domain"
	createBooking "github.com/Liandro13/method-passion-site/internal/usecase/create_booking"
)

// BookingRequest is what the public site posts. The accommodation may be given by id or by name.
type BookingRequest struct {
	AccommodationID   int64  `json:"accommodation_id" validate:"gte=0"`
	AccommodationName string `json:"accommodation" validate:"max=200"`
	CheckIn           string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut          string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests            int    `json:"guests" validate:"required,gt=0,lte=20"`
	Nationality       string `json:"nationality" validate:"max=64"`
	PrimaryName       string `json:"primary_name" validate:"required,max=200"`
	AdditionalNames   string `json:"additional_names" validate:"max=2000"`
	Notes             string `json:"notes" validate:"max=2000"`
}

type BookingRequestResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Status  string `json:"status"`
}

// HasAccommodation reports whether the caller named a stay at all
func (r *BookingRequest) HasAccommodation() bool {
	return r.AccommodationID > 0 || strings.TrimSpace(r.AccommodationName) != ""
}

// ToUseCaseRequest always files a pending booking
func (r *BookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		AccommodationID:   r.AccommodationID,
		AccommodationName: r.AccommodationName,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guests:            r.Guests,
		Nationality:       r.Nationality,
		PrimaryName:       r.PrimaryName,
		AdditionalNames:   r.AdditionalNames,
		Notes:             r.Notes,
		Status:            domain.StatusPending,
	}, nil
}
