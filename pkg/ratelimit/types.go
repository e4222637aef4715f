package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the attempt is allowed.
	Allowed bool

	// Limit is the maximum number of attempts in a window.
	Limit int

	// Attempts is the number of attempts recorded in the current window.
	Attempts int

	// Remaining is the number of attempts left in the current window.
	Remaining int

	// ResetAt is the time the current window ends.
	ResetAt time.Time

	// CheckedAt is the limiter clock reading the decision was made at.
	CheckedAt time.Time
}

// RetryAfter returns how long to wait before the next attempt can pass.
// Returns 0 if the attempt was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	if r.CheckedAt.IsZero() {
		return time.Until(r.ResetAt)
	}
	return r.ResetAt.Sub(r.CheckedAt)
}

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	// Allow records an attempt for key and reports whether it passes.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status returns the current state for key without recording an attempt.
	Status(ctx context.Context, key string) (*Result, error)
}

// Store is a string key-value mapping that keeps rate limit records.
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}
