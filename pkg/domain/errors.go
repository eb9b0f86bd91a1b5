package domain

import "errors"

// Closed set of failure kinds surfaced by the service. Handlers map these
// to HTTP status codes; anything outside this set is reported as a generic
// internal failure.
var (
	// ErrInvalidInput marks malformed or missing request data. It is raised
	// before any upstream call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCurrencyPair means the provider answered but its rate table
	// has no entry for the requested target currency.
	ErrUnknownCurrencyPair = errors.New("unknown currency pair")

	// ErrProviderUnavailable covers transport failures, non-2xx upstream
	// responses and missing payload bodies, uniformly.
	ErrProviderUnavailable = errors.New("exchange rate provider unavailable")

	// ErrUserUnauthorized is returned for bad credentials. Kept deliberately
	// vague to prevent account enumeration.
	ErrUserUnauthorized = errors.New("user unauthorized")

	// ErrEmailAlreadyRegistered is returned on duplicate registration.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
)
