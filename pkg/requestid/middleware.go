package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// New returns a time-ordered UUIDv7 string, or a random v4 one if the
// clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type options struct {
	header   string
	generate func() string
	trust    bool
}

// Option configures MiddlewareWith.
type Option func(*options)

// WithHeader changes the header read from requests and echoed back.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = name
		}
	}
}

// WithGenerator replaces the id generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// WithTrustIncoming controls whether a well-formed client supplied id is
// reused. It is on by default; turn it off at public edges.
func WithTrustIncoming(trust bool) Option {
	return func(o *options) { o.trust = trust }
}

// Middleware attaches a request id with the default options.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWith()(next)
}

// MiddlewareWith stores a request id in the context and echoes it in the
// response header. Malformed incoming ids are replaced.
func MiddlewareWith(opts ...Option) func(http.Handler) http.Handler {
	o := options{header: Header, generate: New, trust: true}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if o.trust {
				id = r.Header.Get(o.header)
			}
			if !IsValid(id) {
				id = o.generate()
			}
			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// IsValid reports whether id is non-empty, at most 128 bytes and made of
// letters, digits, dashes and underscores.
func IsValid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
