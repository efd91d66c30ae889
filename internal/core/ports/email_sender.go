package ports

import "context"

// Email is one outbound message delivered to all its recipients at once.
type Email struct {
	Subject  string
	HTMLBody string
	From     string
	To       []string
}

// EmailSender is an email transport. Send is synchronous and best-effort.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// TemplateRenderer renders a named email template to HTML.
type TemplateRenderer interface {
	Render(templateID string, data map[string]any) (string, error)
}
