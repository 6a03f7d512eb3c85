package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses by the
// API error handler. Services return these unchanged; adapters reclassify
// collaborator failures into them where a precise kind applies.
var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// email, wrong password, missing/malformed/expired token. Lookup misses
	// and hash mismatches deliberately collapse into this single value.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is the policy Deny outcome.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")

	// ErrEmailInUse is the uniqueness conflict on the email field.
	ErrEmailInUse = errors.New("email is already in use")

	// ErrZipCodeNotFound means the postal lookup did not recognise the code.
	ErrZipCodeNotFound = errors.New("zip code not found")

	ErrInvalidInput = errors.New("invalid input")
)
