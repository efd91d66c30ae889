package notifier

import (
	"context"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
)

// customer resolves the request owner. Nil means unreachable.
func (n *Notifier) customer(ctx context.Context, req *request.Request) *notification.Recipient {
	p, ok := n.principal(ctx, req.CustomerID())
	if !ok || !p.HasEmail() {
		return nil
	}
	r := notification.RecipientOf(p)
	return &r
}

// driver follows request -> driver -> principal -> email. Every hop may be
// missing; the driver name is returned whenever the profile resolves.
func (n *Notifier) driver(ctx context.Context, req *request.Request) (*notification.Recipient, string) {
	d, ok := n.driverProfile(ctx, req)
	if !ok {
		return nil, ""
	}
	name := d.Name()

	principalID, ok := d.PrincipalID()
	if !ok {
		return nil, name
	}
	p, ok := n.principal(ctx, principalID)
	if !ok {
		return nil, name
	}
	if name == "" {
		name = p.DisplayName()
	}
	if !p.HasEmail() {
		return nil, name
	}
	r := notification.RecipientOf(p)
	return &r, name
}

func (n *Notifier) driverProfile(ctx context.Context, req *request.Request) (*driver.Driver, bool) {
	driverID := req.Driver()
	if driverID == nil {
		return nil, false
	}
	d, err := n.drivers.Get(ctx, *driverID)
	if err != nil {
		n.logger.Warn("failed to resolve driver", "driver_id", driverID.String(), "error", err)
		return nil, false
	}
	return d, true
}

func (n *Notifier) principal(ctx context.Context, id kernel.UUID) (principal.Principal, bool) {
	p, ok, err := n.directory.Get(ctx, id)
	if err != nil {
		n.logger.Warn("failed to resolve principal", "principal_id", id.String(), "error", err)
		return principal.Principal{}, false
	}
	return p, ok
}

// staff lists directory staff followed by the configured staff addresses.
// Configured addresses carry no principal; duplicates are dropped when the
// message is composed.
func (n *Notifier) staff(ctx context.Context) []notification.Recipient {
	list, err := n.directory.ListStaff(ctx)
	if err != nil {
		n.logger.Warn("failed to list staff", "error", err)
	}
	out := make([]notification.Recipient, 0, len(list)+len(n.cfg.StaffEmails))
	for _, p := range list {
		if p.HasEmail() {
			out = append(out, notification.RecipientOf(p))
		}
	}
	for _, email := range n.cfg.StaffEmails {
		out = append(out, notification.NewRecipient(email, nil))
	}
	return out
}
