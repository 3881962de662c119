package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound is returned when no booking has the requested ID
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDateConflict is returned when the database rejects overlapping confirmed stays
	ErrDateConflict = errors.New("booking.repository: dates conflict with a confirmed booking")

	// ErrAccommodationNotFound is returned when the referenced accommodation does not exist
	ErrAccommodationNotFound = errors.New("booking.repository: accommodation not found")

	ErrBuildQuery = errors.New("booking.repository: failed to build query")
	ErrExecQuery  = errors.New("booking.repository: failed to execute query")
	ErrScanRow    = errors.New("booking.repository: failed to scan row")
)

const (
	pgSerializationFailure = "40001"
	pgExclusionViolation   = "23P01"
	pgForeignKeyViolation  = "23503"
)

// IsConflict reports whether err is a serialization failure or an exclusion violation.
// Both mean a concurrent writer already took the dates.
func IsConflict(err error) bool {
	if errors.Is(err, ErrDateConflict) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgSerializationFailure || pqErr.Code == pgExclusionViolation
	}
	return false
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
