// Package notifier fans lifecycle events out to email and in-app notifications.
//
// For every message the notifier renders the email template, sends it once to
// all recipients and then stores one Notification per recipient. The two
// channels are independent: a failed send never prevents the notifications from
// being stored, and a failed store never surfaces to the caller. Every failure
// is logged and counted, then swallowed.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"golang.org/x/time/rate"
)

var _ ports.Notifier = (*Notifier)(nil)

// ErrTransportNotConfigured is returned when no sender is registered for the selected transport.
var ErrTransportNotConfigured = errors.New("email transport is not configured")

// Dependencies are the collaborators of the notifier. Drivers and Notifications
// must not be bound to a caller's transaction: the notifier runs after commit.
type Dependencies struct {
	Senders       map[Transport]ports.EmailSender
	Renderer      ports.TemplateRenderer
	Directory     ports.PrincipalDirectory
	Drivers       ports.DriverRepository
	Notifications ports.NotificationRepository
	Metrics       *Metrics
	Logger        *slog.Logger
}

// Notifier implements ports.Notifier.
type Notifier struct {
	cfg           Config
	sender        ports.EmailSender
	limiter       *rate.Limiter
	renderer      ports.TemplateRenderer
	directory     ports.PrincipalDirectory
	drivers       ports.DriverRepository
	notifications ports.NotificationRepository
	composer      services.NotificationComposer
	metrics       *Metrics
	logger        *slog.Logger
	now           func() time.Time
}

// New validates cfg and picks the sender registered for cfg.Transport.
func New(cfg Config, deps Dependencies) (*Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sender, ok := deps.Senders[cfg.Transport]
	if !ok || sender == nil {
		return nil, fmt.Errorf("%w: %s", ErrTransportNotConfigured, cfg.Transport)
	}
	if deps.Renderer == nil {
		return nil, errs.NewValueIsRequiredError("renderer")
	}
	if deps.Directory == nil {
		return nil, errs.NewValueIsRequiredError("directory")
	}
	if deps.Drivers == nil {
		return nil, errs.NewValueIsRequiredError("drivers")
	}
	if deps.Notifications == nil {
		return nil, errs.NewValueIsRequiredError("notifications")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.ThrottleRate > 0 {
		burst := max(int(cfg.ThrottleRate), 1)
		limiter = rate.NewLimiter(rate.Limit(cfg.ThrottleRate), burst)
	}

	return &Notifier{
		cfg:           cfg,
		sender:        sender,
		limiter:       limiter,
		renderer:      deps.Renderer,
		directory:     deps.Directory,
		drivers:       deps.Drivers,
		notifications: deps.Notifications,
		composer:      services.NewNotificationComposer(),
		metrics:       deps.Metrics,
		logger:        logger.With("component", "notifier"),
		now:           time.Now,
	}, nil
}

// NewRequest notifies the customer and all staff about a new request.
func (n *Notifier) NewRequest(ctx context.Context, req *request.Request) {
	ctx = context.WithoutCancel(ctx)
	audience := services.Audience{
		Customer: n.customer(ctx, req),
		Staff:    n.staff(ctx),
	}
	n.dispatch(ctx, n.composer.NewRequest(req, audience))
}

// StatusChanged notifies the customer and the assigned driver.
func (n *Notifier) StatusChanged(ctx context.Context, req *request.Request, old request.Status) {
	ctx = context.WithoutCancel(ctx)
	driverRecipient, _ := n.driver(ctx, req)
	audience := services.Audience{
		Customer: n.customer(ctx, req),
		Driver:   driverRecipient,
	}
	n.dispatch(ctx, n.composer.StatusChanged(req, old, audience))
}

// DriverAssigned notifies the assigned driver and the customer.
func (n *Notifier) DriverAssigned(ctx context.Context, req *request.Request) {
	ctx = context.WithoutCancel(ctx)
	driverRecipient, driverName := n.driver(ctx, req)
	audience := services.Audience{
		Customer:   n.customer(ctx, req),
		Driver:     driverRecipient,
		DriverName: driverName,
	}
	n.dispatch(ctx, n.composer.DriverAssigned(req, audience))
}

// UserRegistered notifies staff about a new account.
func (n *Notifier) UserRegistered(ctx context.Context, user principal.Principal) {
	ctx = context.WithoutCancel(ctx)
	n.dispatch(ctx, n.composer.UserRegistered(user, services.Audience{Staff: n.staff(ctx)}))
}

// SignupConfirmed welcomes the new user.
func (n *Notifier) SignupConfirmed(ctx context.Context, user principal.Principal, joined time.Time) {
	ctx = context.WithoutCancel(ctx)
	n.dispatch(ctx, n.composer.SignupConfirmed(user, joined))
}

func (n *Notifier) dispatch(ctx context.Context, messages []services.Message) {
	for _, msg := range messages {
		n.sendEmail(ctx, msg)
		n.store(ctx, msg)
	}
}

func (n *Notifier) sendEmail(ctx context.Context, msg services.Message) {
	log := n.logger.With("template", msg.Template, "recipients", len(msg.Recipients))

	body, err := n.renderer.Render(msg.Template, msg.Data)
	if err != nil {
		log.Error("failed to render email", "error", err)
		n.metrics.email(msg.Template, outcomeRenderFailed)
		return
	}

	if n.limiter != nil {
		// The caller waits on the limiter, so the wait shares the send budget.
		waitCtx, cancel := context.WithTimeout(ctx, n.cfg.SendTimeout)
		err = n.limiter.Wait(waitCtx)
		cancel()
		if err != nil {
			log.Warn("email throttle aborted", "error", err)
			n.metrics.email(msg.Template, outcomeThrottled)
			return
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.cfg.SendTimeout)
	defer cancel()

	err = n.sender.Send(sendCtx, ports.Email{
		Subject:  msg.Subject,
		HTMLBody: body,
		From:     n.cfg.FromAddress,
		To:       msg.Emails(),
	})
	if err != nil {
		log.Error("failed to send email", "error", err)
		n.metrics.email(msg.Template, outcomeFailed)
		return
	}

	log.Info("email sent", "subject", msg.Subject)
	n.metrics.email(msg.Template, outcomeSent)
}

func (n *Notifier) store(ctx context.Context, msg services.Message) {
	for _, rcpt := range msg.Recipients {
		item, err := notification.NewNotification(kernel.NewUUID(), rcpt, msg.Content(), n.now())
		if err == nil {
			err = n.notifications.Add(ctx, item)
		}
		if err != nil {
			n.logger.Error("failed to store notification",
				"kind", msg.Kind.String(), "email", rcpt.Email, "error", err)
			n.metrics.notification(msg.Kind.String(), outcomeFailed)
			continue
		}
		n.metrics.notification(msg.Kind.String(), outcomeStored)
	}
}
