package csrf

import "errors"

var (
	ErrRandomSource  = errors.New("csrf: failed to read random bytes")
	ErrTokenMissing  = errors.New("csrf: token missing")
	ErrTokenMismatch = errors.New("csrf: token mismatch")
	ErrBodyTooLarge  = errors.New("csrf: request body too large")
	ErrInvalidBody   = errors.New("csrf: malformed request body")
)
