// Package mail holds the outbound email transports: console, SMTP and the SES
// provider. Each one implements ports.EmailSender and sends one message to all
// of its recipients.
package mail

import (
	"context"
	"log/slog"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/plaintext"
)

// ConsoleSender writes emails to the log instead of delivering them.
type ConsoleSender struct {
	logger *slog.Logger
}

func NewConsoleSender(logger *slog.Logger) *ConsoleSender {
	return &ConsoleSender{logger: logger.With("component", "console_mail")}
}

func (s *ConsoleSender) Send(ctx context.Context, email ports.Email) error {
	s.logger.InfoContext(ctx, "email",
		"from", email.From,
		"to", email.To,
		"subject", email.Subject,
		"text", plaintext.Strip(email.HTMLBody),
	)
	s.logger.DebugContext(ctx, "email body", "subject", email.Subject, "html", email.HTMLBody)
	return nil
}
