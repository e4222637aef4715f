package email

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`             // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"`  // Optional, overrides Config.SupportEmail
	Subject  string `json:"subject"`             // Subject of the email
	BodyHTML string `json:"body_html,omitempty"` // HTML body, BodyText or both
	BodyText string `json:"body_text,omitempty"` // Plain text body
	Tag      string `json:"tag,omitempty"`       // Optional
}

// Validate checks that the message can be handed to a provider. Failures
// are validator.ValidationErrors joined with ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	rules := []validator.Rule{
		validator.Required("send_to", p.SendTo),
		validator.Email("send_to", p.SendTo),
		validator.Required("subject", p.Subject),
		validator.Required("body", p.BodyHTML+p.BodyText),
	}
	if p.ReplyTo != "" {
		rules = append(rules, validator.Email("reply_to", p.ReplyTo))
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}
