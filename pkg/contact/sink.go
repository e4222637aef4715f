package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/email"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/sanitizer"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Sink receives accepted submissions.
type Sink interface {
	Deliver(ctx context.Context, s *Submission) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s *Submission) error

func (f SinkFunc) Deliver(ctx context.Context, s *Submission) error {
	return f(ctx, s)
}

// LogSink records submissions in the log. Field values are not logged,
// only their names and lengths.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(l *slog.Logger) *LogSink {
	if l == nil {
		l = logger.Discard()
	}
	return &LogSink{logger: l.With(logger.Component("contact.sink"))}
}

func (s *LogSink) Deliver(ctx context.Context, sub *Submission) error {
	sizes := make([]slog.Attr, 0, len(sub.Fields))
	for _, f := range sub.Fields {
		sizes = append(sizes, slog.Int(f, len([]rune(sub.Data[f]))))
	}
	s.logger.InfoContext(ctx, "contact submission received",
		logger.SubmissionID(sub.ID),
		slog.String("language", sub.Language),
		logger.Group("field_lengths", sizes...),
	)
	return nil
}

// EmailSink notifies a mailbox about each submission. When the submission
// carries a valid email field it becomes the Reply-To address.
type EmailSink struct {
	sender        email.EmailSender
	to            string
	subjectPrefix string
	labels        map[string]string
}

// EmailSinkOption configures EmailSink.
type EmailSinkOption func(*EmailSink)

// WithSubjectPrefix sets the text before the sender's name in the subject.
func WithSubjectPrefix(prefix string) EmailSinkOption {
	return func(s *EmailSink) { s.subjectPrefix = prefix }
}

// WithFieldLabels sets the names printed for each field in the message body.
func WithFieldLabels(labels map[string]string) EmailSinkOption {
	return func(s *EmailSink) {
		for k, v := range labels {
			s.labels[k] = v
		}
	}
}

func NewEmailSink(sender email.EmailSender, to string, opts ...EmailSinkOption) (*EmailSink, error) {
	if sender == nil {
		return nil, ErrSinkRequired
	}
	if !validator.IsEmail(to) {
		return nil, fmt.Errorf("%w: recipient %q is not a valid email address", email.ErrInvalidParams, to)
	}
	s := &EmailSink{
		sender:        sender,
		to:            to,
		subjectPrefix: "New contact request",
		labels:        make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *EmailSink) Deliver(ctx context.Context, sub *Submission) error {
	params := email.SendEmailParams{
		SendTo:   s.to,
		Subject:  s.subject(sub),
		BodyText: s.textBody(sub),
		BodyHTML: s.htmlBody(sub),
		Tag:      "contact-form",
	}
	if addr := sub.Get("email"); validator.IsEmail(addr) {
		params.ReplyTo = addr
	}
	return s.sender.SendEmail(ctx, params)
}

func (s *EmailSink) subject(sub *Submission) string {
	if name := sub.Get("name"); name != "" {
		return s.subjectPrefix + ": " + name
	}
	return s.subjectPrefix
}

func (s *EmailSink) label(field string) string {
	if l, ok := s.labels[field]; ok {
		return l
	}
	return field
}

func (s *EmailSink) textBody(sub *Submission) string {
	var b strings.Builder
	for _, f := range sub.Fields {
		fmt.Fprintf(&b, "%s: %s\n", s.label(f), sub.Data[f])
	}
	fmt.Fprintf(&b, "\nSubmission: %s\nReceived: %s\n", sub.ID, sub.ReceivedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// Data values are already escaped by the form engine; labels are not.
func (s *EmailSink) htmlBody(sub *Submission) string {
	var b strings.Builder
	b.WriteString("<table>")
	for _, f := range sub.Fields {
		fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>",
			sanitizer.EscapeHTML(s.label(f)), sub.Data[f])
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p><small>%s</small></p>", sanitizer.EscapeHTML(sub.ID))
	return b.String()
}

// MultiSink delivers to every sink in order. All sinks are attempted; their
// errors are joined.
type MultiSink []Sink

func (m MultiSink) Deliver(ctx context.Context, sub *Submission) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Deliver(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
