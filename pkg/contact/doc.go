// Package contact accepts contact form submissions.
//
// A Processor chains the pieces the landing page uses, in this order:
//
//  1. the rate limiter, keyed by the raw email value or "anonymous";
//  2. the form engine, which sanitizes and validates every field of the
//     rule set and prints messages in the requested language;
//  3. the XSS detector over the sanitized values;
//  4. a Sink, which receives the accepted Submission.
//
// The first failing step ends processing. Rate limiting is optional: a
// Processor built without WithLimiter accepts every well-formed submission.
// When the limiter's store fails, the limiter's fail policy decides.
//
// Handler serves the Processor over HTTP with chi. Responses use a JSON
// envelope: 201 with the submission id, 422 with per-field errors, 429 with
// Retry-After, 400 for suspicious input. GET /csrf returns the token placed
// in the request context by csrf.Middleware; that token is a double-submit
// cookie and is not bound to a session.
//
//	proc, err := contact.NewProcessor(
//		contact.MultiSink{contact.NewLogSink(log), emailSink},
//		contact.WithLimiter(limiter),
//		contact.WithLogger(log),
//	)
//	r.With(csrf.Middleware()).Mount("/api", contact.NewHandler(proc).Routes())
package contact
