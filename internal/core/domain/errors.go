package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidLocator indicates the locator string matched none of the
	// accepted source shapes. Non-retryable; the caller must correct input.
	ErrInvalidLocator = errors.New("locator does not match any known source shape")

	// ErrCredentialsMissing indicates a required principal or secret was
	// absent. Checked before any network call is attempted.
	ErrCredentialsMissing = errors.New("credentials missing")

	// ErrNoContent indicates a fetch completed with zero usable records.
	// A space with no content and an inaccessible space both surface here.
	ErrNoContent = errors.New("no content found")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown source kind.
	ErrUnsupportedKind = errors.New("unsupported source kind")
)
