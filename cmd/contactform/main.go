// Command contactform serves the protected contact form API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/form"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	rules := form.DefaultContactRules()
	if cfg.RulesFile != "" {
		loaded, err := form.LoadRulesFile(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("load form rules: %w", err)
		}
		rules = loaded
	}

	d, err := newDeps(ctx, cfg, rules, log)
	if err != nil {
		return err
	}
	defer d.close()

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("contact form ready",
				slog.String("rate_limit_store", cfg.RateLimit.Store),
				slog.String("mail_driver", cfg.Mail.Driver),
				logger.Fields(rules.Names()...),
			)
		}),
	)

	return srv.Run(ctx, newRouter(cfg, d, log))
}
