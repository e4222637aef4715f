package csrf

import (
	"errors"
	"mime"
	"net/http"
)

const defaultMultipartMemory = 32 << 20

const (
	DefaultCookieName = "csrf_token"
	DefaultFieldName  = "csrf_token"
	DefaultHeaderName = "X-CSRF-Token"
)

type config struct {
	cookieName   string
	fieldName    string
	headerName   string
	path         string
	secure       bool
	sameSite     http.SameSite
	maxBodyBytes int64
	generator    *Generator
	errorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Option configures Middleware.
type Option func(*config)

func WithCookieName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.cookieName = name
		}
	}
}

func WithFieldName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.fieldName = name
		}
	}
}

func WithHeaderName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.headerName = name
		}
	}
}

func WithCookiePath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithSecure marks the cookie Secure. Enable it behind HTTPS.
func WithSecure(secure bool) Option {
	return func(c *config) {
		c.secure = secure
	}
}

func WithSameSite(mode http.SameSite) Option {
	return func(c *config) {
		c.sameSite = mode
	}
}

// WithMaxBodyBytes caps the body read while looking for the form field
// token. Larger bodies are rejected with ErrBodyTooLarge. Zero keeps the
// net/http parsing limits.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

func WithGenerator(g *Generator) Option {
	return func(c *config) {
		if g != nil {
			c.generator = g
		}
	}
}

// WithErrorHandler replaces the default response for rejected requests
// (403 for token errors, 500 when no token can be generated).
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(c *config) {
		if fn != nil {
			c.errorHandler = fn
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTokenMissing), errors.Is(err, ErrTokenMismatch):
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	case errors.Is(err, ErrBodyTooLarge):
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, ErrInvalidBody):
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Middleware implements the double-submit cookie check. Safe requests get a
// token cookie when they carry none; unsafe requests must repeat the cookie
// value in the form field or header.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cookieName:   DefaultCookieName,
		fieldName:    DefaultFieldName,
		headerName:   DefaultHeaderName,
		path:         "/",
		sameSite:     http.SameSiteLaxMode,
		generator:    defaultGenerator,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stored := ""
			if c, err := r.Cookie(cfg.cookieName); err == nil && wellFormed(c.Value) {
				stored = c.Value
			}

			if isSafeMethod(r.Method) {
				if stored == "" {
					token, err := cfg.generator.Generate()
					if err != nil {
						cfg.errorHandler(w, r, err)
						return
					}
					stored = token
					http.SetCookie(w, &http.Cookie{
						Name:     cfg.cookieName,
						Value:    token,
						Path:     cfg.path,
						Secure:   cfg.secure,
						HttpOnly: true,
						SameSite: cfg.sameSite,
					})
				}
				next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), stored)))
				return
			}

			if stored == "" {
				cfg.errorHandler(w, r, ErrTokenMissing)
				return
			}

			candidate := r.Header.Get(cfg.headerName)
			if candidate == "" {
				field, err := cfg.formToken(w, r)
				if err != nil {
					cfg.errorHandler(w, r, err)
					return
				}
				candidate = field
			}
			if !ValidateToken(candidate, stored) {
				cfg.errorHandler(w, r, ErrTokenMismatch)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), stored)))
		})
	}
}

// formToken parses the body within the configured limit and returns the
// token field. The parsed form stays cached on r for later handlers.
func (c *config) formToken(w http.ResponseWriter, r *http.Request) (string, error) {
	if c.maxBodyBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, c.maxBodyBytes)
	}

	var err error
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		limit := c.maxBodyBytes
		if limit <= 0 {
			limit = defaultMultipartMemory
		}
		err = r.ParseMultipartForm(limit)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", errors.Join(ErrBodyTooLarge, err)
		}
		return "", errors.Join(ErrInvalidBody, err)
	}
	return r.PostForm.Get(c.fieldName), nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
