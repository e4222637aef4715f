package ratelimit

import "errors"

var (
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
	ErrInvalidWindow      = errors.New("window must be positive")
	ErrKeyRequired        = errors.New("rate limit key is required")
	ErrStoreRequired      = errors.New("rate limit store is required")
	ErrStoreUnavailable   = errors.New("rate limit store unavailable")
	ErrCorruptRecord      = errors.New("corrupt rate limit record")
)
