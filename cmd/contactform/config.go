package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Store drivers for the rate limiter.
const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

// Mail drivers for submission notifications.
const (
	mailLog      = "log"
	mailDev      = "dev"
	mailPostmark = "postmark"
)

// Config is the service configuration. Store and mail backends load their
// own configs (pkg/redis, pkg/pg, pkg/email) only when selected, so their
// required variables are not demanded otherwise.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Service   string `env:"SERVICE_NAME" envDefault:"contactform"`
	RulesFile string `env:"FORM_RULES_FILE"`

	Log       logger.Config
	HTTP      httpserver.Config
	RateLimit RateLimitConfig
	CSRF      CSRFConfig
	Mail      MailConfig
}

type RateLimitConfig struct {
	Enabled     bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	MaxAttempts int           `env:"RATE_LIMIT_MAX_ATTEMPTS" envDefault:"5"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	FailOpen    bool          `env:"RATE_LIMIT_FAIL_OPEN" envDefault:"false"`
	Store       string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	KeyPrefix   string        `env:"RATE_LIMIT_KEY_PREFIX" envDefault:"rate_limit_"`

	// Per client IP cap on API writes, on top of the per-email limit.
	// Zero disables it.
	IPMaxAttempts int `env:"RATE_LIMIT_IP_MAX_ATTEMPTS" envDefault:"30"`
}

type CSRFConfig struct {
	CookieName string `env:"CSRF_COOKIE_NAME" envDefault:"csrf_token"`
	Secure     bool   `env:"CSRF_COOKIE_SECURE" envDefault:"false"`
}

type MailConfig struct {
	Driver        string `env:"MAIL_DRIVER" envDefault:"log"`
	Recipient     string `env:"CONTACT_RECIPIENT"`
	SubjectPrefix string `env:"CONTACT_SUBJECT_PREFIX" envDefault:"New contact request"`
	DevDir        string `env:"MAIL_DEV_DIR" envDefault:"tmp/emails"`
}

func (c Config) Validate() error {
	rl := c.RateLimit
	limited := rl.Enabled || rl.IPMaxAttempts > 0

	rules := []validator.Rule{
		oneOf("rate_limit_store", rl.Store, storeMemory, storeRedis, storePostgres),
		oneOf("mail_driver", c.Mail.Driver, mailLog, mailDev, mailPostmark),
		check("rate_limit_max_attempts", !rl.Enabled || rl.MaxAttempts > 0, "must be positive"),
		check("rate_limit_ip_max_attempts", rl.IPMaxAttempts >= 0, "must not be negative"),
		check("rate_limit_window", !limited || rl.Window >= time.Second, "must be at least 1s"),
	}
	if c.Mail.Recipient != "" {
		rules = append(rules, validator.Email("contact_recipient", c.Mail.Recipient))
	}
	return validator.Apply(rules...)
}

func check(field string, ok bool, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{Field: field, Message: message},
	}
}

func oneOf(field, value string, allowed ...string) validator.Rule {
	return check(field, slices.Contains(allowed, value),
		fmt.Sprintf("unknown value %q, want one of %s", value, strings.Join(allowed, ", ")))
}
