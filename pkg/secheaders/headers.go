package secheaders

import (
	"maps"
	"net/http"
	"slices"
)

const HeaderCSP = "Content-Security-Policy"

// DefaultHeaders returns the static security headers sent with every response.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "geolocation=(), microphone=(), camera=()",
	}
}

type config struct {
	policy     Policy
	headers    map[string]string
	reportOnly bool
}

// Option configures Middleware.
type Option func(*config)

func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithHeaders replaces the static headers.
func WithHeaders(h map[string]string) Option {
	return func(c *config) {
		c.headers = maps.Clone(h)
	}
}

// WithReportOnly sends the policy as Content-Security-Policy-Report-Only.
func WithReportOnly(reportOnly bool) Option {
	return func(c *config) {
		c.reportOnly = reportOnly
	}
}

// Middleware sets the policy and static headers before calling next.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		policy:  DefaultPolicy(),
		headers: DefaultHeaders(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	csp := cfg.policy.String()
	cspHeader := HeaderCSP
	if cfg.reportOnly {
		cspHeader += "-Report-Only"
	}
	names := slices.Sorted(maps.Keys(cfg.headers))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if csp != "" {
				h.Set(cspHeader, csp)
			}
			for _, name := range names {
				h.Set(name, cfg.headers[name])
			}
			next.ServeHTTP(w, r)
		})
	}
}
