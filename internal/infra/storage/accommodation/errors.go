package accommodation

import "errors"

var (
	ErrAccommodationNotFound = errors.New("accommodation.repository: accommodation not found")
	ErrUnknownLanguage       = errors.New("accommodation.repository: unknown description language")
	ErrBuildQuery            = errors.New("accommodation.repository: failed to build query")
	ErrExecQuery             = errors.New("accommodation.repository: failed to execute query")
	ErrScanRow               = errors.New("accommodation.repository: failed to scan row")
)
