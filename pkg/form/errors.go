package form

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown field type")
	ErrInvalidRules     = errors.New("invalid rule set")
	ErrInvalidPattern   = errors.New("invalid field pattern")
	ErrDuplicateField   = errors.New("duplicate field in rule set")
	ErrEmptyFieldName   = errors.New("empty field name in rule set")
	ErrNegativeLength   = errors.New("field length bounds must not be negative")
	ErrFailedToReadFile = errors.New("failed to read rules file")
)
