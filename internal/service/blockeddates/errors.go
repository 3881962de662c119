package blockeddates

import "errors"

var (
	ErrBlockedDateNotFound   = errors.New("blocked date not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrAccessDenied          = errors.New("access denied")
	ErrInvalidInput          = errors.New("invalid input data")
	ErrInternal              = errors.New("service: internal error")
)
