// Package services defines the business logic for contact management. This
// file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; the
// handler layer translates them into user-facing messages and HTTP status
// codes.
package services

import "errors"

var (
	// ErrNotConfigured is returned when no datastore is attached, typically
	// because DB_PATH was not set at startup. The server keeps running and
	// data endpoints report this instead of crashing.
	ErrNotConfigured = errors.New("database not configured")

	// ErrMissingFields is returned when the create payload lacks any of
	// name, email, or phone.
	ErrMissingFields = errors.New("name, email, and phone are required")

	// ErrInvalidEmail is returned when the email fails the shared shape check.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone is returned when the phone does not normalize to
	// exactly 10 digits.
	ErrInvalidPhone = errors.New("phone must be exactly 10 digits")

	// ErrDuplicateEmail is returned when the store reports a uniqueness
	// violation on the email column.
	ErrDuplicateEmail = errors.New("email already exists")
)
