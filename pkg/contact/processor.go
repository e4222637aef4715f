package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/detect"
	"github.com/dmitrymomot/formguard/pkg/form"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

// AnonymousKey is the rate limit key used when the submission has no email.
const AnonymousKey = "anonymous"

type failPolicy interface {
	FailOpen() bool
}

// Processor runs a submission through the rate limiter, the form engine,
// the XSS detector and finally the sink. It is safe for concurrent use.
type Processor struct {
	sink     Sink
	limiter  ratelimit.Limiter
	engine   *form.Engine
	rules    form.RuleSet
	detector *detect.Detector
	keyField string
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Processor.
type Option func(*Processor)

// WithLimiter enables rate limiting. Without it every submission passes.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(p *Processor) { p.limiter = l }
}

// WithRules replaces DefaultContactRules.
func WithRules(rules form.RuleSet) Option {
	return func(p *Processor) {
		if len(rules) > 0 {
			p.rules = rules
		}
	}
}

func WithEngine(e *form.Engine) Option {
	return func(p *Processor) {
		if e != nil {
			p.engine = e
		}
	}
}

func WithDetector(d *detect.Detector) Option {
	return func(p *Processor) {
		if d != nil {
			p.detector = d
		}
	}
}

// WithRateKeyField names the field whose raw value keys the limiter.
// Defaults to "email".
func WithRateKeyField(field string) Option {
	return func(p *Processor) {
		if field != "" {
			p.keyField = field
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(p *Processor) {
		if fn != nil {
			p.newID = fn
		}
	}
}

func NewProcessor(sink Sink, opts ...Option) (*Processor, error) {
	if sink == nil {
		return nil, ErrSinkRequired
	}
	p := &Processor{
		sink:     sink,
		engine:   form.NewEngine(),
		rules:    form.DefaultContactRules(),
		detector: detect.New(detect.XSSPatterns()...),
		keyField: "email",
		logger:   logger.Discard(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.rules.Validate(); err != nil {
		return nil, err
	}
	p.logger = p.logger.With(logger.Component("contact"))
	return p, nil
}

// Rules returns the rule set submissions are checked against.
func (p *Processor) Rules() form.RuleSet {
	return p.rules
}

// Submit processes one submission. Messages are printed in tag; language.Und
// keeps the engine's language.
//
// Errors: *RateLimitError (ErrRateLimited), ErrRateLimitUnavailable when the
// limiter fails closed, validator.ValidationErrors, *SuspiciousInputError
// (ErrSuspiciousInput) and ErrDeliveryFailed.
func (p *Processor) Submit(ctx context.Context, values form.Values, tag language.Tag) (*Submission, error) {
	if values == nil {
		values = form.Map{}
	}

	if err := p.checkRate(ctx, values); err != nil {
		return nil, err
	}

	engine := p.localized(tag)
	res := engine.Validate(values, p.rules)
	if !res.Valid {
		errs := res.Err()
		p.logger.InfoContext(ctx, "contact submission rejected", logger.Fields(fieldNames(errs)...))
		return nil, errs
	}

	for _, name := range p.rules.Names() {
		if p.detector.Match(res.Data[name]) {
			p.logger.WarnContext(ctx, "suspicious contact submission", logger.Field(name))
			return nil, &SuspiciousInputError{Field: name}
		}
	}

	sub := &Submission{
		ID:         p.newID(),
		Fields:     p.rules.Names(),
		Data:       res.Data,
		Language:   engine.Language().String(),
		ClientIP:   clientip.GetIPFromContext(ctx),
		RequestID:  requestid.FromContext(ctx),
		ReceivedAt: p.now(),
	}

	if err := p.sink.Deliver(ctx, sub); err != nil {
		p.logger.ErrorContext(ctx, "contact submission delivery failed",
			logger.SubmissionID(sub.ID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	p.logger.InfoContext(ctx, "contact submission accepted", logger.SubmissionID(sub.ID))
	return sub, nil
}

// ValidateField checks a single field, as on-blur feedback does. It never
// touches the limiter.
func (p *Processor) ValidateField(name, value string, tag language.Tag) (form.FieldResult, error) {
	rule, ok := p.rules.Lookup(name)
	if !ok {
		return form.FieldResult{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return p.localized(tag).ValidateField(name, value, rule), nil
}

// RateStatus reports the limiter state for key without recording an attempt.
// It returns nil when rate limiting is disabled.
func (p *Processor) RateStatus(ctx context.Context, key string) (*ratelimit.Result, error) {
	if p.limiter == nil {
		return nil, nil
	}
	if key == "" {
		key = AnonymousKey
	}
	return p.limiter.Status(ctx, key)
}

func (p *Processor) checkRate(ctx context.Context, values form.Values) error {
	if p.limiter == nil {
		return nil
	}

	key := values.Get(p.keyField)
	if key == "" {
		key = AnonymousKey
	}

	res, err := p.limiter.Allow(ctx, key)
	if err != nil {
		open := false
		if fp, ok := p.limiter.(failPolicy); ok {
			open = fp.FailOpen()
		}
		p.logger.WarnContext(ctx, "rate limit check failed",
			logger.RateKey(key),
			slog.Bool("fail_open", open),
			logger.Error(err),
		)
		if open {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRateLimitUnavailable, err)
	}
	if !res.Allowed {
		p.logger.InfoContext(ctx, "contact submission rate limited", logger.RateKey(key))
		return &RateLimitError{Result: res}
	}
	return nil
}

func (p *Processor) localized(tag language.Tag) *form.Engine {
	if tag == language.Und {
		return p.engine
	}
	return p.engine.Localize(tag)
}

func fieldNames(err error) []string {
	var errs interface{ Fields() []string }
	if errors.As(err, &errs) {
		return errs.Fields()
	}
	return nil
}
