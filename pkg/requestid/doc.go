// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv7,
// stores it in the request context and echoes it in the response. The id
// reaches structured logs through LoggerExtractor:
//
//	log := logger.New(
//		logger.WithEnvironment(logger.EnvProduction, "contactform"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	r.Use(requestid.Middleware)
package requestid
