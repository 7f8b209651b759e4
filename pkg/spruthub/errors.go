package spruthub

import "errors"

var (
	// ErrNotFound indicates a referenced accessory, room or scenario does not
	// appear in the hub's current listing.
	ErrNotFound = errors.New("not found")

	// ErrNoMatch indicates a characteristic name has no match on the target
	// accessory (optionally scoped by service type).
	ErrNoMatch = errors.New("characteristic not found")

	// ErrReadOnly indicates the characteristic matched but cannot be written.
	ErrReadOnly = errors.New("characteristic is read-only")

	// ErrValidation indicates a required tool input is missing or malformed.
	ErrValidation = errors.New("validation error")
)
