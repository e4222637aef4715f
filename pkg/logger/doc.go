// Package logger builds *slog.Logger values for the contact service.
//
// New returns a JSON logger at info level on stdout. Options change that:
// WithEnvironment picks level and format for a deployment and tags each
// record with service and env, WithConfig applies LOG_LEVEL and LOG_FORMAT
// on top, and WithContextExtractors pulls attributes such as the request id
// out of the record's context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "contactform"),
//		logger.WithConfig(cfg.Log),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// attr.go holds constructors for the attribute keys used across the repo.
// Error and Errors return an empty attribute for nil errors, which slog drops.
package logger
