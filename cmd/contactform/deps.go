package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/contact"
	"github.com/dmitrymomot/formguard/pkg/email"
	"github.com/dmitrymomot/formguard/pkg/form"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/pg"
	"github.com/dmitrymomot/formguard/pkg/ratelimit"
	"github.com/dmitrymomot/formguard/pkg/redis"
)

// deps holds the wired service components.
type deps struct {
	processor *contact.Processor
	ipLimiter ratelimit.Limiter // nil when the per IP cap is off
	checks    []httpserver.Check
	closers   []func()
}

func (d *deps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func newDeps(ctx context.Context, cfg Config, rules form.RuleSet, log *slog.Logger) (*deps, error) {
	d := &deps{}

	opts := []contact.Option{
		contact.WithRules(rules),
		contact.WithLogger(log),
	}

	if cfg.RateLimit.Enabled || cfg.RateLimit.IPMaxAttempts > 0 {
		store, err := d.newStore(ctx, cfg.RateLimit.Store, log)
		if err != nil {
			d.close()
			return nil, err
		}

		if cfg.RateLimit.Enabled {
			limiter, err := newLimiter(store, cfg.RateLimit, cfg.RateLimit.MaxAttempts, cfg.RateLimit.KeyPrefix, log)
			if err != nil {
				d.close()
				return nil, err
			}
			opts = append(opts, contact.WithLimiter(limiter))
		}
		if cfg.RateLimit.IPMaxAttempts > 0 {
			limiter, err := newLimiter(store, cfg.RateLimit, cfg.RateLimit.IPMaxAttempts, cfg.RateLimit.KeyPrefix+"ip_", log)
			if err != nil {
				d.close()
				return nil, err
			}
			d.ipLimiter = limiter
		}
	}

	sink, err := newSink(cfg.Mail, rules, log)
	if err != nil {
		d.close()
		return nil, err
	}

	proc, err := contact.NewProcessor(sink, opts...)
	if err != nil {
		d.close()
		return nil, err
	}
	d.processor = proc

	return d, nil
}

func newLimiter(store ratelimit.Store, cfg RateLimitConfig, attempts int, prefix string, log *slog.Logger) (*ratelimit.FixedWindow, error) {
	return ratelimit.NewFixedWindow(store,
		ratelimit.WithMaxAttempts(attempts),
		ratelimit.WithWindow(cfg.Window),
		ratelimit.WithKeyPrefix(prefix),
		ratelimit.WithFailOpen(cfg.FailOpen),
		ratelimit.WithLogger(log),
	)
}

// newStore connects the selected record store and registers its readiness
// check and cleanup.
func (d *deps) newStore(ctx context.Context, driver string, log *slog.Logger) (ratelimit.Store, error) {
	switch driver {
	case storeRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		})
		d.checks = append(d.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		return ratelimit.NewRedisStore(client)

	case storePostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, pool.Close)
		d.checks = append(d.checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})
		if err := pg.Migrate(ctx, pool, pc, log); err != nil {
			return nil, err
		}
		return ratelimit.NewPostgresStore(pool, ratelimit.DefaultTable)

	default:
		return ratelimit.NewMemoryStore(), nil
	}
}

// newSink always logs submissions and mails them when a recipient is set.
func newSink(cfg MailConfig, rules form.RuleSet, log *slog.Logger) (contact.Sink, error) {
	logSink := contact.NewLogSink(log)
	if cfg.Recipient == "" {
		return logSink, nil
	}

	var sender email.EmailSender
	switch cfg.Driver {
	case mailPostmark:
		var ec email.Config
		if err := config.Load(&ec); err != nil {
			return nil, err
		}
		s, err := email.NewPostmarkClient(ec)
		if err != nil {
			return nil, err
		}
		sender = s
	case mailDev:
		sender = email.NewDevSender(cfg.DevDir)
	default:
		sender = email.NewLogSender(log)
	}

	labels := make(map[string]string, len(rules))
	for _, f := range rules {
		if f.Rule.Label != "" {
			labels[f.Name] = f.Rule.Label
		}
	}

	emailSink, err := contact.NewEmailSink(sender, cfg.Recipient,
		contact.WithSubjectPrefix(cfg.SubjectPrefix),
		contact.WithFieldLabels(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("email sink: %w", err)
	}

	return contact.MultiSink{logSink, emailSink}, nil
}
