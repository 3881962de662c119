package image

import "errors"

var (
	ErrImageNotFound = errors.New("image.repository: image not found")
	ErrBuildQuery    = errors.New("image.repository: failed to build query")
	ErrExecQuery     = errors.New("image.repository: failed to execute query")
	ErrScanRow       = errors.New("image.repository: failed to scan row")
)
