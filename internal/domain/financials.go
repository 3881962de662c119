package domain

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrConfirmationNeedsGross    = errors.New("confirmed booking requires a positive gross value")
	ErrConfirmationNeedsPlatform = errors.New("confirmed booking requires a platform")
	ErrNegativeAmount            = errors.New("amounts must not be negative")
)

// Financials are the settlement figures of a booking.
// ValueNetOfCommissions and ValueNetOfVAT are derived and only ever set by Derive.
type Financials struct {
	GrossValue   *float64
	MunicipalTax *float64
	Commission   *float64
	BankFee      *float64
	VAT          *float64
	Platform     *string

	ValueNetOfCommissions *float64
	ValueNetOfVAT         *float64
}

// Round2 rounds half-up to cents.
// The tiny bias absorbs binary representation error (1.005 is stored as 1.00499...).
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5+1e-7) / 100
}

// Derive recomputes both net values from the inputs. Missing fees count as zero;
// without a gross value there is nothing to derive.
func (f *Financials) Derive() {
	if f.GrossValue == nil {
		f.ValueNetOfCommissions = nil
		f.ValueNetOfVAT = nil
		return
	}

	net := Round2(*f.GrossValue - valueOrZero(f.Commission) - valueOrZero(f.BankFee))
	netOfVAT := Round2(net - valueOrZero(f.VAT))

	f.ValueNetOfCommissions = &net
	f.ValueNetOfVAT = &netOfVAT
}

// ValidateForConfirmation checks what a booking needs before it can be confirmed
func (f Financials) ValidateForConfirmation() error {
	if f.GrossValue == nil || *f.GrossValue <= 0 {
		return ErrConfirmationNeedsGross
	}
	if f.Platform == nil || strings.TrimSpace(*f.Platform) == "" {
		return ErrConfirmationNeedsPlatform
	}
	return nil
}

// ValidateAmounts rejects negative inputs
func (f Financials) ValidateAmounts() error {
	for _, v := range []*float64{f.GrossValue, f.MunicipalTax, f.Commission, f.BankFee, f.VAT} {
		if v != nil && *v < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
