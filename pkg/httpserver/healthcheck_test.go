package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Check{Name: "ok", Fn: func(context.Context) error { return nil }}
	down := httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("down") }}

	tests := []struct {
		name   string
		checks []httpserver.Check
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{name: "ready", checks: []httpserver.Check{ok}, status: http.StatusOK, body: "READY"},
		{name: "not ready", checks: []httpserver.Check{ok, down}, status: http.StatusServiceUnavailable, body: "NOT_READY"},
		{name: "nil check func skipped", checks: []httpserver.Check{{Name: "nil"}}, status: http.StatusOK, body: "READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}
