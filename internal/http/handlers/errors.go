// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// This file centralizes the symbolic error code constants mapped to HTTP
// responses (via the `fail()` helper in this package). The codes give
// clients a stable, machine-readable taxonomy that supplements the
// human-readable `error` messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes (bad_request, conflict, internal_error) mirror common
//     HTTP status semantics.
//   - not_configured flags the operator-fixable "datastore credentials
//     absent" state, which the reference contract reports as a 500.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeConflict         = "conflict"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeNotConfigured = "not_configured"
)
