package secheaders_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/secheaders"
)

func TestPolicy_String(t *testing.T) {
	t.Parallel()

	t.Run("default policy", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src 'self' https://fonts.gstatic.com; "+
				"img-src 'self' data: https:; "+
				"connect-src 'self'; "+
				"frame-src 'none'; "+
				"object-src 'none'; "+
				"base-uri 'self'; "+
				"form-action 'self'; "+
				"upgrade-insecure-requests",
			secheaders.DefaultPolicy().String(),
		)
	})

	t.Run("empty directives are omitted", func(t *testing.T) {
		t.Parallel()
		p := secheaders.Policy{DefaultSrc: []string{"'none'"}, FrameAncestors: []string{"'self'"}}
		assert.Equal(t, "default-src 'none'; frame-ancestors 'self'", p.String())
		assert.Equal(t, "", secheaders.Policy{}.String())
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		secheaders.Middleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, secheaders.DefaultPolicy().String(), rec.Header().Get("Content-Security-Policy"))
		for name, value := range secheaders.DefaultHeaders() {
			assert.Equal(t, value, rec.Header().Get(name), name)
		}
	})

	t.Run("custom policy in report only mode", func(t *testing.T) {
		t.Parallel()

		mw := secheaders.Middleware(
			secheaders.WithPolicy(secheaders.Policy{DefaultSrc: []string{"'self'"}}),
			secheaders.WithHeaders(map[string]string{"X-Frame-Options": "SAMEORIGIN"}),
			secheaders.WithReportOnly(true),
		)
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
		assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy-Report-Only"))
		assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
		assert.Empty(t, rec.Header().Get("X-XSS-Protection"))
	})
}
