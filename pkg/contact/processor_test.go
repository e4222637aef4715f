package contact_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/contact"
	"github.com/dmitrymomot/formguard/pkg/form"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
	"github.com/dmitrymomot/formguard/pkg/requestid"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("store down")
}

// boundedStore rejects keys longer than a btree-indexed column accepts.
type boundedStore struct {
	*ratelimit.MemoryStore
	maxKey int
}

func (s boundedStore) Set(ctx context.Context, key, value string) error {
	if len(key) > s.maxKey {
		return errors.New("index row size exceeds maximum")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newLimiter(t *testing.T, store ratelimit.Store, opts ...ratelimit.Option) *ratelimit.FixedWindow {
	t.Helper()
	opts = append([]ratelimit.Option{
		ratelimit.WithMaxAttempts(2),
		ratelimit.WithWindow(time.Minute),
		ratelimit.WithClock(ratelimit.ClockFunc(func() time.Time { return fixedNow })),
	}, opts...)
	l, err := ratelimit.NewFixedWindow(store, opts...)
	require.NoError(t, err)
	return l
}

func TestNewProcessor(t *testing.T) {
	t.Parallel()

	_, err := contact.NewProcessor(nil)
	assert.ErrorIs(t, err, contact.ErrSinkRequired)

	dup := form.RuleSet{{Name: "a"}, {Name: "a"}}
	_, err = contact.NewProcessor(&recordingSink{}, contact.WithRules(dup))
	assert.ErrorIs(t, err, form.ErrDuplicateField)

	p, err := contact.NewProcessor(&recordingSink{})
	require.NoError(t, err)
	assert.Equal(t, form.DefaultContactRules().Names(), p.Rules().Names())
}

func TestProcessor_Submit(t *testing.T) {
	t.Parallel()

	t.Run("accepts and delivers a valid submission", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink,
			contact.WithClock(func() time.Time { return fixedNow }),
			contact.WithIDGenerator(func() string { return "sub-1" }),
		)
		require.NoError(t, err)

		ctx := clientip.SetIPToContext(context.Background(), "203.0.113.7")
		ctx = requestid.WithContext(ctx, "req-1")

		sub, err := p.Submit(ctx, validValues(), language.Und)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", sub.ID)
		assert.Equal(t, fixedNow, sub.ReceivedAt)
		assert.Equal(t, "en", sub.Language)
		assert.Equal(t, "203.0.113.7", sub.ClientIP)
		assert.Equal(t, "req-1", sub.RequestID)
		assert.Equal(t, []string{"name", "email", "phone", "company", "message"}, sub.Fields)
		assert.Equal(t, "Maria Souza", sub.Get("name"))
		require.Equal(t, 1, sink.count())
	})

	t.Run("sanitizes values before delivery", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink)
		require.NoError(t, err)

		v := validValues()
		v["company"] = "  <b>Acme</b> & Co  "
		sub, err := p.Submit(context.Background(), v, language.Und)
		require.NoError(t, err)
		assert.Equal(t, "Acme &amp; Co", sub.Get("company"))
	})

	t.Run("returns ordered validation errors", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink)
		require.NoError(t, err)

		v := validValues()
		v["name"] = ""
		v["email"] = "not-an-email"
		_, err = p.Submit(context.Background(), v, language.Und)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "email"}, errs.Fields())
		assert.Equal(t, "Name is required", errs.Map()["name"])
		assert.Equal(t, "Invalid email", errs.Map()["email"])
		assert.Zero(t, sink.count())
	})

	t.Run("localizes messages", func(t *testing.T) {
		t.Parallel()
		p, err := contact.NewProcessor(&recordingSink{})
		require.NoError(t, err)

		v := validValues()
		v["phone"] = "123"
		_, err = p.Submit(context.Background(), v, language.BrazilianPortuguese)
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, "Telefone inválido", errs.Map()["phone"])
	})

	t.Run("rejects suspicious input that survives sanitization", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink)
		require.NoError(t, err)

		v := validValues()
		v["company"] = "javascript:void(0)"
		_, err = p.Submit(context.Background(), v, language.Und)
		require.Error(t, err)
		assert.ErrorIs(t, err, contact.ErrSuspiciousInput)

		var sErr *contact.SuspiciousInputError
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, "company", sErr.Field)
		assert.Zero(t, sink.count())
	})

	t.Run("wraps delivery failures", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("smtp down")
		p, err := contact.NewProcessor(&recordingSink{err: boom})
		require.NoError(t, err)

		_, err = p.Submit(context.Background(), validValues(), language.Und)
		assert.ErrorIs(t, err, contact.ErrDeliveryFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil values are treated as empty", func(t *testing.T) {
		t.Parallel()
		p, err := contact.NewProcessor(&recordingSink{})
		require.NoError(t, err)

		_, err = p.Submit(context.Background(), nil, language.Und)
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "email", "phone"}, errs.Fields())
	})
}

func TestProcessor_RateLimit(t *testing.T) {
	t.Parallel()

	t.Run("limits by email and reports retry after", func(t *testing.T) {
		t.Parallel()
		store := ratelimit.NewMemoryStore()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink, contact.WithLimiter(newLimiter(t, store)))
		require.NoError(t, err)

		for range 2 {
			_, err := p.Submit(context.Background(), validValues(), language.Und)
			require.NoError(t, err)
		}

		_, err = p.Submit(context.Background(), validValues(), language.Und)
		require.Error(t, err)
		assert.ErrorIs(t, err, contact.ErrRateLimited)

		var rErr *contact.RateLimitError
		require.ErrorAs(t, err, &rErr)
		assert.Equal(t, time.Minute, rErr.RetryAfter())
		assert.Equal(t, 2, sink.count())

		other := validValues()
		other["email"] = "joao@example.com"
		_, err = p.Submit(context.Background(), other, language.Und)
		assert.NoError(t, err, "a different email has its own window")
	})

	t.Run("oversized email keys stay storable", func(t *testing.T) {
		t.Parallel()
		store := boundedStore{MemoryStore: ratelimit.NewMemoryStore(), maxKey: 256}
		p, err := contact.NewProcessor(&recordingSink{}, contact.WithLimiter(newLimiter(t, store)))
		require.NoError(t, err)

		huge := validValues()
		huge["email"] = strings.Repeat("x", 32<<10) + "@example.com"
		_, err = p.Submit(context.Background(), huge, language.Und)
		assert.NotErrorIs(t, err, contact.ErrRateLimitUnavailable)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("invalid submissions still count", func(t *testing.T) {
		t.Parallel()
		p, err := contact.NewProcessor(&recordingSink{},
			contact.WithLimiter(newLimiter(t, ratelimit.NewMemoryStore())))
		require.NoError(t, err)

		bad := form.Map{"email": "maria@example.com"}
		for range 2 {
			_, err := p.Submit(context.Background(), bad, language.Und)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)
		}
		_, err = p.Submit(context.Background(), validValues(), language.Und)
		assert.ErrorIs(t, err, contact.ErrRateLimited)
	})

	t.Run("missing email uses the anonymous key", func(t *testing.T) {
		t.Parallel()
		limiter := newLimiter(t, ratelimit.NewMemoryStore())
		p, err := contact.NewProcessor(&recordingSink{}, contact.WithLimiter(limiter))
		require.NoError(t, err)

		_, _ = p.Submit(context.Background(), form.Map{}, language.Und)

		status, err := p.RateStatus(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, 1, status.Attempts)

		status, err = limiter.Status(context.Background(), contact.AnonymousKey)
		require.NoError(t, err)
		assert.Equal(t, 1, status.Attempts)
	})

	t.Run("fails closed by default", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink, contact.WithLimiter(newLimiter(t, brokenStore{})))
		require.NoError(t, err)

		_, err = p.Submit(context.Background(), validValues(), language.Und)
		assert.ErrorIs(t, err, contact.ErrRateLimitUnavailable)
		assert.Zero(t, sink.count())
	})

	t.Run("fails open when configured", func(t *testing.T) {
		t.Parallel()
		sink := &recordingSink{}
		p, err := contact.NewProcessor(sink,
			contact.WithLimiter(newLimiter(t, brokenStore{}, ratelimit.WithFailOpen(true))))
		require.NoError(t, err)

		_, err = p.Submit(context.Background(), validValues(), language.Und)
		require.NoError(t, err)
		assert.Equal(t, 1, sink.count())
	})

	t.Run("disabled limiter", func(t *testing.T) {
		t.Parallel()
		p, err := contact.NewProcessor(&recordingSink{})
		require.NoError(t, err)

		for range 10 {
			_, err := p.Submit(context.Background(), validValues(), language.Und)
			require.NoError(t, err)
		}
		status, err := p.RateStatus(context.Background(), "maria@example.com")
		require.NoError(t, err)
		assert.Nil(t, status)
	})
}

func TestProcessor_ValidateField(t *testing.T) {
	t.Parallel()

	p, err := contact.NewProcessor(&recordingSink{})
	require.NoError(t, err)

	res, err := p.ValidateField("email", "maria@example.com", language.Und)
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = p.ValidateField("name", "A", language.BrazilianPortuguese)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "Mínimo de 2 caracteres", res.Error)

	_, err = p.ValidateField("password", "x", language.Und)
	assert.ErrorIs(t, err, contact.ErrUnknownField)
}
