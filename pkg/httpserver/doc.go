// Package httpserver runs the contact form HTTP service with graceful
// shutdown, bounded timeouts and readiness checks.
//
// Server is built with New or NewFromConfig and functional options. Run
// blocks until its context is cancelled or SIGINT/SIGTERM arrives, then
// calls Shutdown with the configured deadline. Listen errors are wrapped
// with ErrStart and shutdown errors with ErrShutdown.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
