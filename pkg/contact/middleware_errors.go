package contact

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/formguard/pkg/csrf"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
)

// CSRFErrorHandler renders csrf.Middleware rejections in the JSON envelope.
// Use it with csrf.WithErrorHandler.
func CSRFErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	switch {
	case errors.Is(err, csrf.ErrBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
	case errors.Is(err, csrf.ErrInvalidBody):
		writeError(w, http.StatusBadRequest, "invalid_body", "malformed request body")
	case errors.Is(err, csrf.ErrTokenMissing), errors.Is(err, csrf.ErrTokenMismatch):
		writeError(w, http.StatusForbidden, "csrf_invalid", "missing or invalid CSRF token")
	default:
		writeError(w, http.StatusInternalServerError, "csrf_unavailable", "CSRF token unavailable")
	}
}

// LimitReachedHandler renders a denied ratelimit.Middleware request. Use it
// with ratelimit.WithOnLimitReached.
func LimitReachedHandler(w http.ResponseWriter, _ *http.Request, result *ratelimit.Result) {
	writeRateLimited(w, result)
}

// LimiterErrorHandler returns a ratelimit.WithOnError handler. With failOpen
// the request continues; otherwise it gets 503 in the JSON envelope.
func LimiterErrorHandler(failOpen bool, log *slog.Logger) func(http.ResponseWriter, *http.Request, http.Handler, error) {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, next http.Handler, err error) {
		log.WarnContext(r.Context(), "rate limit middleware check failed",
			logger.Error(err),
			slog.Bool("fail_open", failOpen),
		)
		if failOpen {
			next.ServeHTTP(w, r)
			return
		}
		writeError(w, http.StatusServiceUnavailable, "rate_limit_unavailable", "service temporarily unavailable")
	}
}

func writeRateLimited(w http.ResponseWriter, result *ratelimit.Result) {
	if result != nil {
		ratelimit.SetHeaders(w, result)
		w.Header().Set("Retry-After", strconv.Itoa(ratelimit.RetryAfterSeconds(result)))
	}
	writeJSON(w, http.StatusTooManyRequests, Response{
		Error: &ErrorDetail{Code: "rate_limited", Message: "too many attempts, please wait before trying again"},
	})
}
