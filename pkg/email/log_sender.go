package email

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// LogSender writes messages to a logger instead of sending them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender returns an EmailSender that logs every message at info level.
// Bodies are not logged.
func NewLogSender(l *slog.Logger) EmailSender {
	if l == nil {
		l = slog.Default()
	}
	return &LogSender{logger: l.With(logger.Component("email"))}
}

func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "email not sent, log sender in use",
		slog.String("send_to", params.SendTo),
		slog.String("reply_to", params.ReplyTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
	)
	return nil
}
