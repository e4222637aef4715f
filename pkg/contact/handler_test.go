package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/contact"
	"github.com/dmitrymomot/formguard/pkg/csrf"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
)

type envelope struct {
	Data  map[string]any       `json:"data"`
	Error *contact.ErrorDetail `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newHandler(t *testing.T, opts ...contact.Option) (http.Handler, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]contact.Option{contact.WithIDGenerator(func() string { return "sub-1" })}, opts...)
	p, err := contact.NewProcessor(sink, opts...)
	require.NoError(t, err)
	return contact.NewHandler(p).Routes(), sink
}

func formBody(v map[string]string) *strings.Reader {
	vals := url.Values{}
	for k, s := range v {
		vals.Set(k, s)
	}
	return strings.NewReader(vals.Encode())
}

func TestHandler_Submit(t *testing.T) {
	t.Parallel()

	t.Run("form encoded submission is created", func(t *testing.T) {
		t.Parallel()
		h, sink := newHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/contact", formBody(validValues()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "sub-1", env.Data["id"])
		assert.Equal(t, 1, sink.count())
	})

	t.Run("json non-string values become empty", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(t)

		body := `{"name": 42, "email": "maria@example.com", "phone": "(11) 98765-4321"}`
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_failed", env.Error.Code)
		assert.Equal(t, map[string]string{"name": "Name is required"}, env.Error.Errors)
	})

	t.Run("errors follow Accept-Language", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Nome é obrigatório", env.Error.Errors["name"])
		assert.Equal(t, "Telefone é obrigatório", env.Error.Errors["phone"])
	})

	t.Run("suspicious input is rejected", func(t *testing.T) {
		t.Parallel()
		h, sink := newHandler(t)

		v := validValues()
		v["message"] = "click onmouseover=steal()"
		req := httptest.NewRequest(http.MethodPost, "/contact", formBody(v))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "suspicious_input", decode(t, rec).Error.Code)
		assert.Zero(t, sink.count())
	})

	t.Run("rate limited submissions get Retry-After", func(t *testing.T) {
		t.Parallel()
		limiter, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(),
			ratelimit.WithMaxAttempts(1),
			ratelimit.WithWindow(90*time.Second),
			ratelimit.WithClock(ratelimit.ClockFunc(func() time.Time { return fixedNow })),
		)
		require.NoError(t, err)
		h, _ := newHandler(t, contact.WithLimiter(limiter))

		send := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/contact", formBody(validValues()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec
		}

		require.Equal(t, http.StatusCreated, send().Code)
		rec := send()
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "90", rec.Header().Get("Retry-After"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "rate_limited", decode(t, rec).Error.Code)
	})

	t.Run("body errors", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(t)

		tests := []struct {
			name        string
			contentType string
			body        string
			status      int
			code        string
		}{
			{"missing content type", "", "name=x", http.StatusUnsupportedMediaType, "unsupported_media_type"},
			{"xml", "application/xml", "<a/>", http.StatusUnsupportedMediaType, "unsupported_media_type"},
			{"broken json", "application/json", "{", http.StatusBadRequest, "invalid_body"},
			{"empty json", "application/json", "", http.StatusBadRequest, "invalid_body"},
			{"trailing json", "application/json", `{} {}`, http.StatusBadRequest, "invalid_body"},
			{"json array", "application/json", `["a"]`, http.StatusBadRequest, "invalid_body"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
				if tt.contentType != "" {
					req.Header.Set("Content-Type", tt.contentType)
				}
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				require.Equal(t, tt.status, rec.Code)
				assert.Equal(t, tt.code, decode(t, rec).Error.Code)
			})
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()
		p, err := contact.NewProcessor(&recordingSink{})
		require.NoError(t, err)
		h := contact.NewHandler(p, contact.WithMaxBodyBytes(32)).Routes()

		req := httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"message":"`+strings.Repeat("a", 100)+`"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "body_too_large", decode(t, rec).Error.Code)
	})
}

func TestHandler_ValidateField(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		valid  bool
		msg    string
	}{
		{"valid email", "/validate/email", `{"value":"maria@example.com"}`, http.StatusOK, true, ""},
		{"invalid phone", "/validate/phone", `{"value":"12"}`, http.StatusOK, false, "Invalid phone number"},
		{"field name as key", "/validate/name", `{"name":"A"}`, http.StatusOK, false, "Minimum of 2 characters"},
		{"unknown field", "/validate/password", `{"value":"x"}`, http.StatusNotFound, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			env := decode(t, rec)
			if tt.status != http.StatusOK {
				assert.Equal(t, "unknown_field", env.Error.Code)
				return
			}
			assert.Equal(t, tt.valid, env.Data["valid"])
			assert.Equal(t, tt.msg, env.Data["error"])
		})
	}
}

func TestHandler_Token(t *testing.T) {
	t.Parallel()

	p, err := contact.NewProcessor(&recordingSink{})
	require.NoError(t, err)
	handler := contact.NewHandler(p)

	t.Run("with csrf middleware", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Use(csrf.Middleware())
		r.Mount("/", handler.Routes())

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/csrf", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		token, _ := env.Data["token"].(string)
		assert.Len(t, token, csrf.TokenLength)
		assert.Equal(t, csrf.DefaultFieldName, env.Data["field"])
		assert.Equal(t, csrf.DefaultHeaderName, env.Data["header"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, token, cookies[0].Value)
	})

	t.Run("without csrf middleware", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/csrf", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "csrf_unavailable", decode(t, rec).Error.Code)
	})
}
