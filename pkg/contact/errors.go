package contact

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/formguard/pkg/ratelimit"
)

var (
	ErrRateLimited          = errors.New("contact: too many submissions")
	ErrRateLimitUnavailable = errors.New("contact: rate limiter unavailable")
	ErrSuspiciousInput      = errors.New("contact: suspicious input detected")
	ErrDeliveryFailed       = errors.New("contact: submission delivery failed")
	ErrUnknownField         = errors.New("contact: unknown field")
	ErrSinkRequired         = errors.New("contact: sink is required")
	ErrInvalidBody          = errors.New("contact: invalid request body")
	ErrUnsupportedMediaType = errors.New("contact: unsupported media type")
)

// RateLimitError is returned by Submit when the sender exhausted the window.
// It matches ErrRateLimited with errors.Is.
type RateLimitError struct {
	Result *ratelimit.Result
}

// RetryAfter is how long the sender has to wait.
func (e *RateLimitError) RetryAfter() time.Duration {
	if e.Result == nil {
		return 0
	}
	return e.Result.RetryAfter()
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter().Round(time.Second))
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// SuspiciousInputError names the field whose sanitized value still matched
// an injection pattern. It matches ErrSuspiciousInput with errors.Is.
type SuspiciousInputError struct {
	Field string
}

func (e *SuspiciousInputError) Error() string {
	return fmt.Sprintf("%s in field %q", ErrSuspiciousInput, e.Field)
}

func (e *SuspiciousInputError) Unwrap() error {
	return ErrSuspiciousInput
}
