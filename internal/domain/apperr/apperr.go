// Package apperr defines the error taxonomy shared by the lifecycle
// services. Handlers map these to HTTP statuses with errors.Is; services
// wrap them with context via fmt.Errorf("...: %w", ...).
package apperr

import "errors"

var (
	// ErrValidation means malformed input; nothing was written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means an id did not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller failed the ownership check.
	ErrForbidden = errors.New("forbidden")
	// ErrLocationNotFound means geocoding returned zero matches.
	ErrLocationNotFound = errors.New("location not found")
	// ErrAdapter means the image store or geocoder was unreachable or failed.
	ErrAdapter = errors.New("adapter failure")
)
