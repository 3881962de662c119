package models

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// ListBookingsRequest carries the optional list filters
type ListBookingsRequest struct {
	AccommodationID *int64
	Status          *domain.BookingStatus
}

// BookingResponse is the JSON shape of a booking
type BookingResponse struct {
	ID                int64  `json:"id"`
	AccommodationID   int64  `json:"accommodation_id"`
	AccommodationName string `json:"accommodation_name,omitempty"`
	CheckIn           string `json:"check_in"`  // "2026-03-10"
	CheckOut          string `json:"check_out"` // "2026-03-15"
	Guests            int    `json:"guests"`
	Nationality       string `json:"nationality"`
	PrimaryName       string `json:"primary_name"`
	AdditionalNames   string `json:"additional_names"`
	Notes             string `json:"notes"`
	Status            string `json:"status"`

	GrossValue            *float64 `json:"gross_value"`
	MunicipalTax          *float64 `json:"municipal_tax"`
	Commission            *float64 `json:"commission"`
	BankFee               *float64 `json:"bank_fee"`
	VAT                   *float64 `json:"vat"`
	Platform              *string  `json:"platform"`
	ValueNetOfCommissions *float64 `json:"value_net_of_commissions"`
	ValueNetOfVAT         *float64 `json:"value_net_of_vat"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse wraps a list the way every list endpoint does
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a booking into its JSON shape
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                    b.ID,
		AccommodationID:       b.AccommodationID,
		AccommodationName:     b.AccommodationName,
		CheckIn:               b.CheckIn.Format(domain.DateFormat),
		CheckOut:              b.CheckOut.Format(domain.DateFormat),
		Guests:                b.Guests,
		Nationality:           b.Nationality,
		PrimaryName:           b.PrimaryName,
		AdditionalNames:       b.AdditionalNames,
		Notes:                 b.Notes,
		Status:                string(b.Status),
		GrossValue:            b.Financials.GrossValue,
		MunicipalTax:          b.Financials.MunicipalTax,
		Commission:            b.Financials.Commission,
		BankFee:               b.Financials.BankFee,
		VAT:                   b.Financials.VAT,
		Platform:              b.Financials.Platform,
		ValueNetOfCommissions: b.Financials.ValueNetOfCommissions,
		ValueNetOfVAT:         b.Financials.ValueNetOfVAT,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

// FromDomainBookings converts a list; the result is never nil
func FromDomainBookings(list []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
