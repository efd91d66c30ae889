package notifier

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/pkg/errs"
)

// Transport selects the email backend.
type Transport string

const (
	TransportConsole  Transport = "console"
	TransportSMTP     Transport = "smtp"
	TransportProvider Transport = "provider"
)

// DefaultSendTimeout bounds a single email send when Config.SendTimeout is zero.
const DefaultSendTimeout = 10 * time.Second

// ParseTransport accepts console, smtp and provider (case-insensitive). An empty
// value selects the console transport.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TransportConsole, nil
	case TransportConsole, TransportSMTP, TransportProvider:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidError("email transport " + s)
	}
}

// Config is the explicit notifier configuration.
type Config struct {
	Transport   Transport
	FromAddress string
	// ThrottleRate is the number of emails per second; zero disables throttling.
	ThrottleRate float64
	SendTimeout  time.Duration
	// StaffEmails are always part of the staff audience, in addition to the
	// staff principals the directory knows about.
	StaffEmails []string
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	var list []error
	if _, err := ParseTransport(string(c.Transport)); err != nil {
		list = append(list, err)
	}
	if strings.TrimSpace(c.FromAddress) == "" {
		list = append(list, errs.NewValueIsRequiredError("from address"))
	}
	if c.ThrottleRate < 0 {
		list = append(list, errs.NewValueIsInvalidError("throttle rate"))
	}
	if c.SendTimeout < 0 {
		list = append(list, errs.NewValueIsInvalidError("send timeout"))
	}
	if err := errors.Join(list...); err != nil {
		return err
	}

	c.Transport, _ = ParseTransport(string(c.Transport))
	c.StaffEmails = compactEmails(c.StaffEmails)
	if c.SendTimeout == 0 {
		c.SendTimeout = DefaultSendTimeout
	}
	return nil
}

func compactEmails(emails []string) []string {
	var out []string
	for _, email := range emails {
		if email = strings.TrimSpace(email); email != "" {
			out = append(out, email)
		}
	}
	return out
}
