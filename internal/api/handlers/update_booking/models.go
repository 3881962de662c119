package update_booking

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
	bookingModels "github.com/Liandro13/method-passion-site/internal/service/bookings/models"
	updateBooking "github.com/Liandro13/method-passion-site/internal/usecase/update_booking"
)

var ErrDerivedField = errors.New("derived values cannot be set")

// UpdateBookingRequest HTTP request model. Absent fields are left untouched.
type UpdateBookingRequest struct {
	AccommodationID *int64  `json:"accommodation_id" validate:"omitempty,gt=0"`
	CheckIn         *string `json:"check_in" validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	Guests          *int    `json:"guests" validate:"omitempty,gt=0,lte=20"`
	Nationality     *string `json:"nationality" validate:"omitempty,max=64"`
	PrimaryName     *string `json:"primary_name" validate:"omitempty,max=200"`
	AdditionalNames *string `json:"additional_names" validate:"omitempty,max=2000"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`

	GrossValue   *float64 `json:"gross_value" validate:"omitempty,gte=0"`
	MunicipalTax *float64 `json:"municipal_tax" validate:"omitempty,gte=0"`
	Commission   *float64 `json:"commission" validate:"omitempty,gte=0"`
	BankFee      *float64 `json:"bank_fee" validate:"omitempty,gte=0"`
	VAT          *float64 `json:"vat" validate:"omitempty,gte=0"`
	Platform     *string  `json:"platform" validate:"omitempty,max=100"`

	// present only to be rejected
	ValueNetOfCommissions json.RawMessage `json:"value_net_of_commissions"`
	ValueNetOfVAT         json.RawMessage `json:"value_net_of_vat"`
}

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
	Success bool                           `json:"success"`
	Booking *bookingModels.BookingResponse `json:"booking"`
}

// ToUseCaseRequest converts the body into a typed patch
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	if isSet(r.ValueNetOfCommissions) || isSet(r.ValueNetOfVAT) {
		return nil, ErrDerivedField
	}

	patch := domain.BookingPatch{
		AccommodationID: r.AccommodationID,
		Guests:          r.Guests,
		Nationality:     r.Nationality,
		PrimaryName:     r.PrimaryName,
		AdditionalNames: r.AdditionalNames,
		Notes:           r.Notes,
		GrossValue:      r.GrossValue,
		MunicipalTax:    r.MunicipalTax,
		Commission:      r.Commission,
		BankFee:         r.BankFee,
		VAT:             r.VAT,
		Platform:        r.Platform,
	}

	var err error
	if patch.CheckIn, err = parseOptionalDate(r.CheckIn); err != nil {
		return nil, err
	}
	if patch.CheckOut, err = parseOptionalDate(r.CheckOut); err != nil {
		return nil, err
	}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		patch.Status = &status
	}

	return &updateBooking.Request{ID: id, Patch: patch}, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := domain.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		Success: true,
		Booking: bookingModels.FromDomainBooking(resp.Booking),
	}
}

// isSet reports a present, non-null raw value
func isSet(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
