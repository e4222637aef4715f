package ratelimit

import (
	"net/http"
	"strconv"
)

type failPolicy interface {
	FailOpen() bool
}

// MiddlewareOption configures middleware behavior.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimitReached func(w http.ResponseWriter, r *http.Request, result *Result)
	onError        func(w http.ResponseWriter, r *http.Request, next http.Handler, err error)
	skipFunc       func(r *http.Request) bool
}

// WithOnLimitReached sets a custom handler for rate limit exceeded.
func WithOnLimitReached(fn func(w http.ResponseWriter, r *http.Request, result *Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimitReached = fn
		}
	}
}

// WithOnError sets the handler for limiter errors. It decides whether next
// runs.
func WithOnError(fn func(w http.ResponseWriter, r *http.Request, next http.Handler, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithSkipFunc sets a function to determine if rate limiting should be skipped.
func WithSkipFunc(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.skipFunc = fn
	}
}

// Middleware enforces limiter on every request keyed by keyFunc. Requests
// with an empty key pass unchecked. Limiter errors follow the limiter's fail
// policy when it exposes one (FixedWindow does) and fail open otherwise.
func Middleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if keyFunc == nil {
		panic("ratelimit.Middleware: keyFunc is required")
	}

	config := &middlewareConfig{
		onLimitReached: tooManyRequests,
		onError: func(w http.ResponseWriter, r *http.Request, next http.Handler, _ error) {
			if p, ok := limiter.(failPolicy); ok && !p.FailOpen() {
				http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.skipFunc != nil && config.skipFunc(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				config.onError(w, r, next, err)
				return
			}

			SetHeaders(w, result)

			if !result.Allowed {
				config.onLimitReached(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SetHeaders writes the X-RateLimit-* headers for result.
func SetHeaders(w http.ResponseWriter, result *Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

// RetryAfterSeconds rounds the wait up to whole seconds, at least 1.
func RetryAfterSeconds(result *Result) int {
	d := result.RetryAfter()
	secs := int(d.Seconds())
	if float64(secs) < d.Seconds() {
		secs++
	}
	return max(secs, 1)
}

func tooManyRequests(w http.ResponseWriter, _ *http.Request, result *Result) {
	w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds(result)))
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}
