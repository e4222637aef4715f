package email_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/email"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Test Subject",
		BodyHTML: "<p>Test body</p>",
	}

	tests := []struct {
		name    string
		modify  func(p *email.SendEmailParams)
		wantErr string
	}{
		{"valid params", func(p *email.SendEmailParams) {}, ""},
		{"text body only", func(p *email.SendEmailParams) { p.BodyHTML = ""; p.BodyText = "hello" }, ""},
		{"valid reply to", func(p *email.SendEmailParams) { p.ReplyTo = "visitor@example.com" }, ""},
		{"plus address", func(p *email.SendEmailParams) { p.SendTo = "test.user+tag@sub.example.com" }, ""},
		{"empty SendTo", func(p *email.SendEmailParams) { p.SendTo = "" }, "send_to"},
		{"whitespace SendTo", func(p *email.SendEmailParams) { p.SendTo = "   " }, "send_to"},
		{"invalid SendTo", func(p *email.SendEmailParams) { p.SendTo = "user@" }, "send_to"},
		{"invalid ReplyTo", func(p *email.SendEmailParams) { p.ReplyTo = "x<y>@example.com" }, "reply_to"},
		{"empty Subject", func(p *email.SendEmailParams) { p.Subject = " " }, "subject"},
		{"no body", func(p *email.SendEmailParams) { p.BodyHTML = " " }, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.modify(&params)

			err := params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			require.True(t, validator.IsValidationError(err))
			assert.Equal(t, []string{tt.wantErr}, validator.ExtractValidationErrors(err).Fields())
		})
	}
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes bodies and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   "sales@example.com",
			ReplyTo:  "visitor@example.com",
			Subject:  "New contact",
			BodyHTML: "<p>Hi</p>",
			BodyText: "Hi",
			Tag:      "contact",
		})
		require.NoError(t, err)

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 3)

		var metaPath string
		for _, f := range files {
			assert.Contains(t, f.Name(), "_contact.")
			if strings.HasSuffix(f.Name(), ".json") {
				metaPath = filepath.Join(dir, f.Name())
			}
		}
		require.NotEmpty(t, metaPath)

		raw, err := os.ReadFile(metaPath)
		require.NoError(t, err)

		var meta map[string]string
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "sales@example.com", meta["send_to"])
		assert.Equal(t, "visitor@example.com", meta["reply_to"])
		assert.Equal(t, "New contact", meta["subject"])
	})

	t.Run("skips empty bodies", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := email.NewDevSender(dir).SendEmail(ctx, email.SendEmailParams{
			SendTo:   "sales@example.com",
			Subject:  "Text only",
			BodyText: "Hi",
		})
		require.NoError(t, err)

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("rejects invalid params", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := email.NewDevSender(dir).SendEmail(ctx, email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		files, _ := os.ReadDir(dir)
		assert.Empty(t, files)
	})
}

func TestLogSender_SendEmail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := email.NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "sales@example.com",
		Subject:  "New contact",
		BodyText: "secret body",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"send_to":"sales@example.com"`)
	assert.Contains(t, out, `"component":"email"`)
	assert.NotContains(t, out, "secret body")

	err = sender.SendEmail(context.Background(), email.SendEmailParams{SendTo: "nope"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
