package update_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// validatePatch checks the supplied fields on their own
func validatePatch(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	p := req.Patch
	if p.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if p.AccommodationID != nil && *p.AccommodationID <= 0 {
		return fmt.Errorf("%w: accommodation_id must be positive", ErrInvalidInput)
	}
	if p.Guests != nil && (*p.Guests <= 0 || *p.Guests > domain.MaxGuests) {
		return fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, domain.MaxGuests)
	}
	if p.PrimaryName != nil {
		name := strings.TrimSpace(*p.PrimaryName)
		if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
			return fmt.Errorf("%w: primary_name must be 1 to %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
	}
	if p.Notes != nil && utf8.RuneCountInString(*p.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	if p.Status != nil {
		if _, err := domain.ParseBookingStatus(string(*p.Status)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	amounts := domain.Financials{
		GrossValue:   p.GrossValue,
		MunicipalTax: p.MunicipalTax,
		Commission:   p.Commission,
		BankFee:      p.BankFee,
		VAT:          p.VAT,
	}
	if err := amounts.ValidateAmounts(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// checkAccess: admins edit anything, team users edit the guest details of pending
// stays in scope
func checkAccess(identity domain.Identity, current *domain.Booking, p domain.BookingPatch) error {
	if identity.IsAdmin() {
		return nil
	}
	if !identity.CanAccess(current.AccommodationID) {
		return fmt.Errorf("%w: booking id=%d", ErrAccessDenied, current.ID)
	}
	if p.AccommodationID != nil && !identity.CanAccess(*p.AccommodationID) {
		return fmt.Errorf("%w: accommodation id=%d", ErrAccessDenied, *p.AccommodationID)
	}
	if current.Status != domain.StatusPending {
		return fmt.Errorf("%w: only admins may edit %s bookings", ErrAccessDenied, current.Status)
	}
	if p.Status != nil && *p.Status != domain.StatusPending {
		return fmt.Errorf("%w: only admins may set status %s", ErrAccessDenied, *p.Status)
	}
	if p.MunicipalTax != nil || p.Platform != nil || p.ChangesDerivationInputs() {
		return fmt.Errorf("%w: only admins may edit financial fields", ErrAccessDenied)
	}
	return nil
}

// validateMerged checks the record as it will be after the patch
func validateMerged(merged *domain.Booking, p domain.BookingPatch) error {
	if !merged.CheckOut.After(merged.CheckIn) {
		return fmt.Errorf("%w: check_out must be after check_in", ErrInvalidInput)
	}

	touchesConfirmation := p.Status != nil || p.GrossValue != nil || p.Platform != nil
	if merged.IsConfirmed() && touchesConfirmation {
		if err := merged.Financials.ValidateForConfirmation(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
