package create_booking

import (
	"github.com/Liandro13/method-passion-site/internal/domain"
	bookingModels "github.com/Liandro13/method-passion-site/internal/service/bookings/models"
	createBooking "github.com/Liandro13/method-passion-site/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AccommodationID int64  `json:"accommodation_id" validate:"required,gt=0"`
	CheckIn         string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests          int    `json:"guests" validate:"required,gt=0,lte=20"`
	Nationality     string `json:"nationality" validate:"max=64"`
	PrimaryName     string `json:"primary_name" validate:"required,max=200"`
	AdditionalNames string `json:"additional_names" validate:"max=2000"`
	Notes           string `json:"notes" validate:"max=2000"`
	Status          string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`

	GrossValue   *float64 `json:"gross_value" validate:"omitempty,gte=0"`
	MunicipalTax *float64 `json:"municipal_tax" validate:"omitempty,gte=0"`
	Commission   *float64 `json:"commission" validate:"omitempty,gte=0"`
	BankFee      *float64 `json:"bank_fee" validate:"omitempty,gte=0"`
	VAT          *float64 `json:"vat" validate:"omitempty,gte=0"`
	Platform     *string  `json:"platform" validate:"omitempty,max=100"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success bool                           `json:"success"`
	ID      int64                          `json:"id"`
	Booking *bookingModels.BookingResponse `json:"booking"`
}

// ToUseCaseRequest converts the validated body into the use case request
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		AccommodationID: r.AccommodationID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		Nationality:     r.Nationality,
		PrimaryName:     r.PrimaryName,
		AdditionalNames: r.AdditionalNames,
		Notes:           r.Notes,
		Status:          domain.BookingStatus(r.Status),
		GrossValue:      r.GrossValue,
		MunicipalTax:    r.MunicipalTax,
		Commission:      r.Commission,
		BankFee:         r.BankFee,
		VAT:             r.VAT,
		Platform:        r.Platform,
	}, nil
}

// FromUseCaseResponse converts the created booking into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		ID:      resp.Booking.ID,
		Booking: bookingModels.FromDomainBooking(resp.Booking),
	}
}
