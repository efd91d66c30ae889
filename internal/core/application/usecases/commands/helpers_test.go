package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func newActor(t *testing.T, email string, staff bool) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), email, "", staff)
	require.NoError(t, err)
	return p
}

func newPendingRequest(t *testing.T, customer principal.Principal) *request.Request {
	t.Helper()
	req, err := request.NewRequest(kernel.NewUUID(), customer.ID(), request.Details{
		CustomerName: "Ada",
		Address:      "1 Main St",
	}, created)
	require.NoError(t, err)
	return req
}

func newLinkedDriver(t *testing.T, owner principal.Principal) *driver.Driver {
	t.Helper()
	ownerID := owner.ID()
	d, err := driver.NewDriver(kernel.NewUUID(), &ownerID, "Dan", "0700", created)
	require.NoError(t, err)
	return d
}

func newAssignedRequest(t *testing.T, customer principal.Principal, d *driver.Driver) *request.Request {
	t.Helper()
	req := newPendingRequest(t, customer)
	require.NoError(t, req.Assign(d.ID(), request.ReassignAny, created))
	return req
}
