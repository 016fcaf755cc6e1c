package contract

import "errors"

// Error kinds returned by registry transactions. Operations wrap them with context,
// so callers match with errors.Is.
var (
	// ErrUnauthorized is returned when the invoking identity cannot be resolved.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRecordNotFound is returned when no profile exists for the given id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateEntry is returned when a freshly minted id is already occupied.
	// Ids only come from the counter, so this signals corrupted state.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrValidationFailed is returned when a field violates its length or count bounds.
	ErrValidationFailed = errors.New("validation failed")
	// ErrAccessDenied is returned when the caller is not the owner of the profile.
	ErrAccessDenied = errors.New("access denied")
)
