package blockeddate

import "errors"

var (
	ErrBlockedDateNotFound   = errors.New("blockeddate.repository: blocked date not found")
	ErrAccommodationNotFound = errors.New("blockeddate.repository: accommodation not found")
	ErrBuildQuery            = errors.New("blockeddate.repository: failed to build query")
	ErrExecQuery             = errors.New("blockeddate.repository: failed to execute query")
	ErrScanRow               = errors.New("blockeddate.repository: failed to scan row")
)
