package session

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired tokens
	ErrSessionNotFound = errors.New("session.repository: session not found")

	ErrBuildQuery = errors.New("session.repository: failed to build query")
	ErrExecQuery  = errors.New("session.repository: failed to execute query")
	ErrScanRow    = errors.New("session.repository: failed to scan row")
)
