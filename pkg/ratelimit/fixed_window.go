package ratelimit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute
	DefaultKeyPrefix   = "rate_limit_"
)

// FixedWindow implements a fixed window attempt counter over a Store.
type FixedWindow struct {
	store       Store
	maxAttempts int
	window      time.Duration
	clock       Clock
	prefix      string
	logger      *slog.Logger
	failOpen    bool
}

// Option configures a FixedWindow.
type Option func(*FixedWindow)

// WithMaxAttempts sets the attempts allowed per window.
func WithMaxAttempts(n int) Option {
	return func(f *FixedWindow) {
		f.maxAttempts = n
	}
}

// WithWindow sets the window length. It is stored with millisecond precision.
func WithWindow(d time.Duration) Option {
	return func(f *FixedWindow) {
		f.window = d
	}
}

func WithClock(c Clock) Option {
	return func(f *FixedWindow) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithKeyPrefix sets the prefix prepended to every key in the store.
func WithKeyPrefix(prefix string) Option {
	return func(f *FixedWindow) {
		f.prefix = prefix
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *FixedWindow) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithFailOpen makes Permit allow attempts when the store fails.
func WithFailOpen(failOpen bool) Option {
	return func(f *FixedWindow) {
		f.failOpen = failOpen
	}
}

// NewFixedWindow creates a fixed window limiter. Defaults are 5 attempts per
// 15 minutes.
func NewFixedWindow(store Store, opts ...Option) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	f := &FixedWindow{
		store:       store,
		maxAttempts: DefaultMaxAttempts,
		window:      DefaultWindow,
		clock:       wallClock{},
		prefix:      DefaultKeyPrefix,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	if f.window < time.Millisecond {
		return nil, ErrInvalidWindow
	}

	return f, nil
}

// Allow records an attempt for key using the configured limits.
func (f *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	return f.AllowWith(ctx, key, f.maxAttempts, f.window)
}

// AllowWith records an attempt for key with explicit limits.
//
// Keys longer than 64 bytes are stored under ShortenKey(key).
//
// No record, or a window that ended before now, starts a new window with one
// attempt. Inside the window the attempt is denied once maxAttempts were
// recorded; otherwise the counter is incremented.
func (f *FixedWindow) AllowWith(ctx context.Context, key string, maxAttempts int, window time.Duration) (*Result, error) {
	if err := validateArgs(key, maxAttempts, window); err != nil {
		return nil, err
	}

	now := f.clock.Now()
	storeKey := f.prefix + ShortenKey(key)

	rec, found, err := f.load(ctx, storeKey)
	if err != nil {
		return nil, err
	}

	switch {
	case !found || rec.Expired(now):
		rec = Record{Attempts: 1, ResetTime: now.UnixMilli() + window.Milliseconds()}
	case rec.Attempts >= maxAttempts:
		return newResult(false, maxAttempts, rec, now), nil
	default:
		rec.Attempts++
	}

	if err := f.save(ctx, storeKey, rec); err != nil {
		return nil, err
	}
	return newResult(true, maxAttempts, rec, now), nil
}

// Permit reports whether an attempt for key passes. Errors are logged and
// resolved by the fail policy.
func (f *FixedWindow) Permit(ctx context.Context, key string) bool {
	return f.PermitWith(ctx, key, f.maxAttempts, f.window)
}

func (f *FixedWindow) PermitWith(ctx context.Context, key string, maxAttempts int, window time.Duration) bool {
	res, err := f.AllowWith(ctx, key, maxAttempts, window)
	if err != nil {
		f.logger.WarnContext(ctx, "rate limit check failed",
			logger.RateKey(key),
			slog.Bool("fail_open", f.failOpen),
			logger.Error(err),
		)
		return f.failOpen
	}
	if !res.Allowed {
		f.logger.InfoContext(ctx, "rate limit exceeded",
			logger.RateKey(key),
			slog.Int("attempts", res.Attempts),
			slog.Time("reset_at", res.ResetAt),
		)
	}
	return res.Allowed
}

// Status returns the state of key without recording an attempt. A key with
// no active window reports zero attempts.
func (f *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if err := validateArgs(key, f.maxAttempts, f.window); err != nil {
		return nil, err
	}

	now := f.clock.Now()
	rec, found, err := f.load(ctx, f.prefix+ShortenKey(key))
	if err != nil {
		return nil, err
	}
	if !found || rec.Expired(now) {
		rec = Record{ResetTime: now.UnixMilli()}
	}

	return newResult(rec.Attempts < f.maxAttempts, f.maxAttempts, rec, now), nil
}

// FailOpen reports whether Permit allows attempts when the store fails.
func (f *FixedWindow) FailOpen() bool {
	return f.failOpen
}

func (f *FixedWindow) MaxAttempts() int {
	return f.maxAttempts
}

func (f *FixedWindow) Window() time.Duration {
	return f.window
}

func (f *FixedWindow) load(ctx context.Context, key string) (Record, bool, error) {
	value, found, err := f.store.Get(ctx, key)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: get %s: %w", ErrStoreUnavailable, key, err)
	}
	if !found {
		return Record{}, false, nil
	}

	rec, err := decodeRecord(value)
	if err != nil {
		return Record{}, false, fmt.Errorf("%s: %w", key, err)
	}
	return rec, true, nil
}

func (f *FixedWindow) save(ctx context.Context, key string, rec Record) error {
	value, err := rec.encode()
	if err != nil {
		return err
	}
	if err := f.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStoreUnavailable, key, err)
	}
	return nil
}

func validateArgs(key string, maxAttempts int, window time.Duration) error {
	if key == "" {
		return ErrKeyRequired
	}
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	if window < time.Millisecond {
		return ErrInvalidWindow
	}
	return nil
}

func newResult(allowed bool, limit int, rec Record, now time.Time) *Result {
	return &Result{
		Allowed:   allowed,
		Limit:     limit,
		Attempts:  rec.Attempts,
		Remaining: max(limit-rec.Attempts, 0),
		ResetAt:   rec.ResetAt(),
		CheckedAt: now,
	}
}
