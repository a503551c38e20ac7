// Package domain holds the ArtSpace data model and the sentinel errors
// shared by services and views. Callers match errors with errors.Is.
package domain

import "errors"

var (
	// Session errors.
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Authorization errors raised by catalog mutations.
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not allowed")

	ErrNotFound = errors.New("not found")
)
