package validator

import "errors"

var (
	// ErrValidationFailed is the generic validation failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field is too short or too long.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a field does not match its expected format.
	ErrInvalidFormat = errors.New("invalid format")
)
