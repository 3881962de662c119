package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Booking represents a guest reservation of an accommodation
type Booking struct {
	ID                int64
	AccommodationID   int64
	AccommodationName string // joined, read-only
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            int
	Nationality       string
	PrimaryName       string
	AdditionalNames   string
	Notes             string
	Status            BookingStatus

	Financials Financials

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stay returns the booked nights as a range
func (b *Booking) Stay() DateRange {
	return DateRange{Start: b.CheckIn, End: b.CheckOut}
}

// IsConfirmed returns true if the booking occupies its dates
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// BookingPatch is a partial update; nil fields are left untouched
type BookingPatch struct {
	AccommodationID *int64
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          *int
	Nationality     *string
	PrimaryName     *string
	AdditionalNames *string
	Notes           *string
	Status          *BookingStatus

	GrossValue   *float64
	MunicipalTax *float64
	Commission   *float64
	BankFee      *float64
	VAT          *float64
	Platform     *string
}

// IsEmpty reports whether the patch changes nothing
func (p BookingPatch) IsEmpty() bool {
	return p.AccommodationID == nil && p.CheckIn == nil && p.CheckOut == nil &&
		p.Guests == nil && p.Nationality == nil && p.PrimaryName == nil &&
		p.AdditionalNames == nil && p.Notes == nil && p.Status == nil &&
		p.MunicipalTax == nil && p.Platform == nil && !p.ChangesDerivationInputs()
}

// ChangesDerivationInputs reports whether the net values have to be recomputed
func (p BookingPatch) ChangesDerivationInputs() bool {
	return p.GrossValue != nil || p.Commission != nil || p.BankFee != nil || p.VAT != nil
}

// ApplyTo writes the supplied fields onto b
func (p BookingPatch) ApplyTo(b *Booking) {
	if p.AccommodationID != nil {
		b.AccommodationID = *p.AccommodationID
	}
	if p.CheckIn != nil {
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		b.CheckOut = *p.CheckOut
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.Nationality != nil {
		b.Nationality = *p.Nationality
	}
	if p.PrimaryName != nil {
		b.PrimaryName = *p.PrimaryName
	}
	if p.AdditionalNames != nil {
		b.AdditionalNames = *p.AdditionalNames
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.GrossValue != nil {
		b.Financials.GrossValue = p.GrossValue
	}
	if p.MunicipalTax != nil {
		b.Financials.MunicipalTax = p.MunicipalTax
	}
	if p.Commission != nil {
		b.Financials.Commission = p.Commission
	}
	if p.BankFee != nil {
		b.Financials.BankFee = p.BankFee
	}
	if p.VAT != nil {
		b.Financials.VAT = p.VAT
	}
	if p.Platform != nil {
		b.Financials.Platform = p.Platform
	}
}

// DerivedValues are the recomputed net values written together with a patch
type DerivedValues struct {
	ValueNetOfCommissions *float64
	ValueNetOfVAT         *float64
}

// BookingFilter selects bookings for listing
type BookingFilter struct {
	AccommodationID *int64         // explicit filter (optional)
	Status          *BookingStatus // explicit filter (optional)
	CheckOutFrom    *time.Time     // check_out >= CheckOutFrom (optional)

	// Scope restricts rows to these accommodations when Restricted is set.
	// A restricted empty scope matches nothing.
	Scope      []int64
	Restricted bool

	OrderAscending bool // check_in ASC instead of DESC
}
