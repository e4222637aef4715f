// Package ratelimit counts attempts per key in fixed time windows.
//
// The first attempt for a key opens a window of the configured length. Every
// further attempt inside the window increments the counter until it reaches
// the maximum; attempts past the maximum are denied and leave the record
// untouched. The first attempt after the window has elapsed opens a new one.
//
//	limiter, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(),
//	    ratelimit.WithMaxAttempts(5),
//	    ratelimit.WithWindow(15*time.Minute),
//	)
//	if err != nil {
//	    return err
//	}
//	if !limiter.Permit(ctx, email) {
//	    // too many attempts
//	}
//
// # Storage
//
// Records live in a Store, a plain string key-value mapping. Each record is
// stored as JSON, {"attempts":N,"resetTime":MS} with resetTime in Unix
// milliseconds, under the key prefix "rate_limit_". MemoryStore keeps records
// in process, RedisStore in Redis and PostgresStore in a rate_limits table.
// Records are never deleted; stale keys stay in the store.
//
// # Limitations
//
// The window is fixed, not sliding: up to twice the maximum attempts can pass
// around a window boundary. The limiter reads a record, changes it and writes
// it back without any locking, so callers sharing a store can lose updates
// and admit more attempts than configured. Keys supplied by clients (an
// e-mail address, a form value) can be rotated at will. Treat the limiter as a
// speed bump, not as enforcement.
//
// # Store failures
//
// Allow and Status return ErrStoreUnavailable or ErrCorruptRecord when the
// store cannot be used. Permit turns such errors into a decision: deny by
// default, allow when the limiter was built WithFailOpen.
package ratelimit
