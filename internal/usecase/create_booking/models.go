package create_booking

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// Request holds a new booking. Zero Status means pending.
// AccommodationName is used only when AccommodationID is zero.
type Request struct {
	AccommodationID   int64
	AccommodationName string
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            int
	Nationality       string
	PrimaryName       string
	AdditionalNames   string
	Notes             string
	Status            domain.BookingStatus

	GrossValue   *float64
	MunicipalTax *float64
	Commission   *float64
	BankFee      *float64
	VAT          *float64
	Platform     *string
}

// Response wraps the stored booking
type Response struct {
	Booking *domain.Booking
}
