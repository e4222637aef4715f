package contact

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formguard/pkg/csrf"
	"github.com/dmitrymomot/formguard/pkg/form"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Handler exposes a Processor over HTTP.
//
//	POST /contact          submit the form (urlencoded, multipart or JSON)
//	GET  /csrf             token for the page, set by csrf.Middleware
//	POST /validate/{field} validate one field, {"value": "..."} or value=...
type Handler struct {
	proc         *Processor
	logger       *slog.Logger
	maxBodyBytes int64
	csrfField    string
	csrfHeader   string
}

// HandlerOption configures Handler.
type HandlerOption func(*Handler)

func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxBodyBytes caps request bodies; larger bodies get 400.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithCSRFNames sets the field and header names advertised by GET /csrf.
// They must match the csrf.Middleware configuration.
func WithCSRFNames(field, header string) HandlerOption {
	return func(h *Handler) {
		if field != "" {
			h.csrfField = field
		}
		if header != "" {
			h.csrfHeader = header
		}
	}
}

func NewHandler(proc *Processor, opts ...HandlerOption) *Handler {
	if proc == nil {
		panic("contact.NewHandler: processor is required")
	}
	h := &Handler{
		proc:         proc,
		logger:       logger.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
		csrfField:    csrf.DefaultFieldName,
		csrfHeader:   csrf.DefaultHeaderName,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("contact.http"))
	return h
}

// Routes returns the contact endpoints. Wrap them with csrf.Middleware.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/contact", h.Submit)
	r.Get("/csrf", h.Token)
	r.Post("/validate/{field}", h.ValidateField)
	return r
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	values, err := bindValues(w, r, h.maxBodyBytes)
	if err != nil {
		h.bindError(w, err)
		return
	}

	sub, err := h.proc.Submit(r.Context(), values, requestLanguage(r))
	if err != nil {
		h.submitError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Data: map[string]any{
		"id":          sub.ID,
		"received_at": sub.ReceivedAt,
	}})
}

func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	token := csrf.TokenFromContext(r.Context())
	if token == "" {
		h.logger.ErrorContext(r.Context(), "csrf token missing from context, is csrf.Middleware mounted?")
		writeError(w, http.StatusInternalServerError, "csrf_unavailable", "CSRF token unavailable")
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: map[string]string{
		"token":  token,
		"field":  h.csrfField,
		"header": h.csrfHeader,
	}})
}

func (h *Handler) ValidateField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	values, err := bindValues(w, r, h.maxBodyBytes)
	if err != nil {
		h.bindError(w, err)
		return
	}
	value := values.Get("value")
	if value == "" {
		value = values.Get(field)
	}

	res, err := h.proc.ValidateField(field, value, requestLanguage(r))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_field", "unknown field "+strconv.Quote(field))
		return
	}

	writeJSON(w, http.StatusOK, Response{Data: map[string]any{
		"field": res.Name,
		"valid": res.Valid,
		"error": res.Error,
	}})
}

func (h *Handler) bindError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
	case errors.Is(err, ErrUnsupportedMediaType):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
	default:
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
	}
}

func (h *Handler) submitError(w http.ResponseWriter, r *http.Request, err error) {
	var rateErr *RateLimitError
	switch {
	case errors.As(err, &rateErr):
		writeRateLimited(w, rateErr.Result)
	case validator.IsValidationError(err):
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Error: &ErrorDetail{Code: "validation_failed", Message: "validation failed", Errors: validator.ExtractValidationErrors(err).Map()},
		})
	case errors.Is(err, ErrSuspiciousInput):
		writeError(w, http.StatusBadRequest, "suspicious_input", "suspicious input detected, please review your data")
	case errors.Is(err, ErrRateLimitUnavailable):
		writeError(w, http.StatusServiceUnavailable, "rate_limit_unavailable", "service temporarily unavailable")
	default:
		h.logger.ErrorContext(r.Context(), "contact submission failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "could not process the submission")
	}
}

func requestLanguage(r *http.Request) language.Tag {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return form.MatchLanguage(lang)
	}
	return form.MatchLanguage(r.Header.Get("Accept-Language"))
}
