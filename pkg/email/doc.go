// Package email delivers notification messages through a provider-agnostic
// EmailSender.
//
// Implementations:
//   - NewPostmarkClient sends through Postmark's transactional API.
//   - NewDevSender writes every message to a directory for local inspection.
//   - NewLogSender only logs recipients and subjects.
//
// All implementations call SendEmailParams.Validate before doing anything:
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "sales@example.com",
//	    ReplyTo:  visitorEmail,
//	    Subject:  "New contact request",
//	    BodyText: body,
//	})
//	if errors.Is(err, email.ErrInvalidParams) {
//	    // programming error or bad recipient
//	}
//
// # Configuration
//
// Config is loaded from the environment (POSTMARK_SERVER_TOKEN,
// POSTMARK_ACCOUNT_TOKEN, SENDER_EMAIL, SUPPORT_EMAIL). Use
// MustNewPostmarkClient to fail fast on startup.
package email
