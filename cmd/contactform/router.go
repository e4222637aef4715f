package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/contact"
	"github.com/dmitrymomot/formguard/pkg/csrf"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
	"github.com/dmitrymomot/formguard/pkg/requestid"
	"github.com/dmitrymomot/formguard/pkg/secheaders"
)

func newRouter(cfg Config, d *deps, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		secheaders.Middleware(),
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, d.checks...))

	r.Route("/api", func(r chi.Router) {
		if d.ipLimiter != nil {
			r.Use(ratelimit.Middleware(d.ipLimiter, ratelimit.IPKey,
				ratelimit.WithSkipFunc(func(r *http.Request) bool {
					return r.Method == http.MethodGet
				}),
				ratelimit.WithOnLimitReached(contact.LimitReachedHandler),
				ratelimit.WithOnError(contact.LimiterErrorHandler(cfg.RateLimit.FailOpen, log)),
			))
		}
		r.Use(csrf.Middleware(
			csrf.WithCookieName(cfg.CSRF.CookieName),
			csrf.WithSecure(cfg.CSRF.Secure),
			csrf.WithMaxBodyBytes(contact.DefaultMaxBodyBytes),
			csrf.WithErrorHandler(contact.CSRFErrorHandler),
		))
		r.Mount("/", contact.NewHandler(d.processor, contact.WithHandlerLogger(log)).Routes())
	})

	return r
}
