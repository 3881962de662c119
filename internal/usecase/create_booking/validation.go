package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// buildBooking validates req and turns it into a booking with derived values filled
func buildBooking(req *Request, accommodationID int64) (*domain.Booking, error) {
	if accommodationID <= 0 {
		return nil, fmt.Errorf("%w: accommodation_id is required", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: check_in and check_out are required", ErrInvalidInput)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Guests <= 0 {
		return nil, fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}
	if req.Guests > domain.MaxGuests {
		return nil, fmt.Errorf("%w: at most %d guests", ErrInvalidInput, domain.MaxGuests)
	}

	primaryName := strings.TrimSpace(req.PrimaryName)
	if primaryName == "" {
		return nil, fmt.Errorf("%w: primary_name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(primaryName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: primary_name is too long", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if _, err := domain.ParseBookingStatus(string(status)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking := &domain.Booking{
		AccommodationID: accommodationID,
		CheckIn:         stay.Start,
		CheckOut:        stay.End,
		Guests:          req.Guests,
		Nationality:     strings.TrimSpace(req.Nationality),
		PrimaryName:     primaryName,
		AdditionalNames: strings.TrimSpace(req.AdditionalNames),
		Notes:           req.Notes,
		Status:          status,
		Financials: domain.Financials{
			GrossValue:   req.GrossValue,
			MunicipalTax: req.MunicipalTax,
			Commission:   req.Commission,
			BankFee:      req.BankFee,
			VAT:          req.VAT,
			Platform:     req.Platform,
		},
	}

	if err := booking.Financials.ValidateAmounts(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if booking.IsConfirmed() {
		if err := booking.Financials.ValidateForConfirmation(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	booking.Financials.Derive()
	return booking, nil
}

// checkAccess: admins book anything, team users book pending stays in scope,
// guests only file pending requests
func checkAccess(identity domain.Identity, booking *domain.Booking) error {
	if identity.IsAdmin() {
		return nil
	}
	if booking.Status != domain.StatusPending {
		return errors.New("only admins may create non-pending bookings")
	}
	if identity.Role == domain.RoleTeam && !identity.CanAccess(booking.AccommodationID) {
		return fmt.Errorf("accommodation id=%d is outside the caller scope", booking.AccommodationID)
	}
	return nil
}
