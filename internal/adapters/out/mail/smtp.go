package mail

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

// SMTPClient is the part of the go-mail client the sender uses.
type SMTPClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender delivers emails through an SMTP relay, upgrading to TLS when the
// server offers it.
type SMTPSender struct {
	client SMTPClient
}

// NewSMTPSender builds a go-mail client. Credentials are optional; when a
// username is set PLAIN auth is used.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("smtp host")
	}

	options := []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		options = append(options, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return NewSMTPSenderWithClient(client), nil
}

func NewSMTPSenderWithClient(client SMTPClient) *SMTPSender {
	return &SMTPSender{client: client}
}

func (s *SMTPSender) Send(ctx context.Context, email ports.Email) error {
	msg, err := newMessage(email)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func newMessage(email ports.Email) (*gomail.Msg, error) {
	if len(email.To) == 0 {
		return nil, errs.NewValueIsRequiredError("recipients")
	}

	msg := gomail.NewMsg()
	if err := errors.Join(msg.From(email.From), msg.To(email.To...)); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTMLBody)

	return msg, nil
}
