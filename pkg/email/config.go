package email

import (
	"errors"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Config holds email service configuration.
// The Postmark tokens are optional so development environments can run with
// the log or dev sender instead.
// SenderEmail is the From address of every message; SupportEmail is the
// Reply-To used when a message does not set its own.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}

// Validate checks the addresses. config.Load calls it after parsing.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.Required("sender_email", c.SenderEmail),
		validator.Email("sender_email", c.SenderEmail),
		validator.Required("support_email", c.SupportEmail),
		validator.Email("support_email", c.SupportEmail),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
