package request_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() request.Details {
	pickup := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return request.Details{
		CustomerName:     "Ada Lovelace",
		Phone:            "+44 20 7946 0000",
		Address:          "12 St James's Square",
		ItemsDescription: "3 shirts, 1 suit",
		ServiceType:      "dry_clean",
		PickupTime:       &pickup,
	}
}

func newPendingRequest(t *testing.T, now time.Time) *request.Request {
	t.Helper()
	r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("starts pending without driver", func(t *testing.T) {
		id, customerID := kernel.NewUUID(), kernel.NewUUID()

		r, err := request.NewRequest(id, customerID, validDetails(), now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.IsOwnedBy(customerID))
		assert.Equal(t, request.Pending, r.Status())
		assert.Nil(t, r.Driver())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, now, r.UpdatedAt())
		assert.Equal(t, "3 shirts, 1 suit", r.Details().ItemsDescription)
	})

	t.Run("trims descriptive fields", func(t *testing.T) {
		details := validDetails()
		details.Address = "  1 Main St  "

		r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), details, now)

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", r.Details().Address)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		details := validDetails()
		details.Address = " "
		details.CustomerName = ""

		_, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), details, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("rejects a missing customer", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), kernel.UUID{}, validDetails(), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var r request.Request
		require.ErrorIs(t, r.Validate(), request.ErrRequestIsNotConstructed)
	})
}

func TestRestoreRequest(t *testing.T) {
	now := time.Now().UTC()
	driverID := kernel.NewUUID()

	t.Run("restores a consistent request", func(t *testing.T) {
		r, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(), &driverID,
			request.PickedUp, validDetails(), now, now)

		require.NoError(t, err)
		assert.Equal(t, request.PickedUp, r.Status())
		assert.True(t, r.IsAssignedTo(driverID))
	})

	t.Run("rejects a driver-bearing status without driver", func(t *testing.T) {
		_, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(), nil,
			request.InProgress, validDetails(), now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a pending request with driver", func(t *testing.T) {
		_, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(), &driverID,
			request.Pending, validDetails(), now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("driver accessor returns a copy", func(t *testing.T) {
		r, err := request.RestoreRequest(kernel.NewUUID(), kernel.NewUUID(), &driverID,
			request.Assigned, validDetails(), now, now)
		require.NoError(t, err)

		got := r.Driver()
		*got = kernel.NewUUID()

		assert.True(t, r.IsAssignedTo(driverID))
	})
}

func TestRequest_Assign(t *testing.T) {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	t.Run("sets driver and status", func(t *testing.T) {
		r := newPendingRequest(t, created)
		driverID := kernel.NewUUID()

		require.NoError(t, r.Assign(driverID, request.ReassignAny, later))

		assert.Equal(t, request.Assigned, r.Status())
		assert.True(t, r.IsAssignedTo(driverID))
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})

	t.Run("rejects an invalid driver id", func(t *testing.T) {
		r := newPendingRequest(t, created)

		require.ErrorIs(t, r.Assign(kernel.UUID{}, request.ReassignAny, later), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, request.Pending, r.Status())
	})

	t.Run("pending mode forbids reassignment", func(t *testing.T) {
		r := newPendingRequest(t, created)
		first := kernel.NewUUID()
		require.NoError(t, r.Assign(first, request.ReassignPending, later))

		err := r.Assign(kernel.NewUUID(), request.ReassignPending, later)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, r.IsAssignedTo(first))
	})
}

func TestRequest_UpdateStatus(t *testing.T) {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("walks the happy path", func(t *testing.T) {
		r := newPendingRequest(t, created)
		require.NoError(t, r.Assign(kernel.NewUUID(), request.ReassignAny, created))

		steps := []request.Status{request.PickedUp, request.InProgress, request.Completed}
		previous := request.Assigned
		for i, next := range steps {
			at := created.Add(time.Duration(i+1) * time.Minute)

			old, err := r.UpdateStatus(next, at)

			require.NoError(t, err)
			assert.Equal(t, previous, old)
			assert.Equal(t, next, r.Status())
			assert.Equal(t, at, r.UpdatedAt())
			previous = next
		}
		assert.True(t, r.Status().IsTerminal())
	})

	t.Run("pending cannot be updated", func(t *testing.T) {
		r := newPendingRequest(t, created)

		_, err := r.UpdateStatus(request.Completed, created.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, request.Pending, r.Status())
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("picked up cannot skip in progress", func(t *testing.T) {
		r := newPendingRequest(t, created)
		require.NoError(t, r.Assign(kernel.NewUUID(), request.ReassignAny, created))
		_, err := r.UpdateStatus(request.PickedUp, created)
		require.NoError(t, err)

		_, err = r.UpdateStatus(request.Completed, created)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, request.PickedUp, r.Status())
	})
}

// TestRequest_DriverInvariantOverReachableStates explores every state reachable through
// Assign and UpdateStatus and checks that a driver is present exactly for assigned,
// picked_up and in_progress, or optionally for the terminal statuses.
func TestRequest_DriverInvariantOverReachableStates(t *testing.T) {
	now := time.Now().UTC()

	type step func(r *request.Request) error
	steps := []step{
		func(r *request.Request) error { return r.Assign(kernel.NewUUID(), request.ReassignAny, now) },
	}
	for _, s := range allStatuses {
		next := s
		steps = append(steps, func(r *request.Request) error {
			_, err := r.UpdateStatus(next, now)
			return err
		})
	}

	var explore func(r *request.Request, depth int)
	explore = func(r *request.Request, depth int) {
		hasDriver := r.Driver() != nil
		if r.Status().RequiresDriver() {
			require.True(t, hasDriver, "status %s without driver", r.Status())
		}
		if r.Status() == request.Pending {
			require.False(t, hasDriver, "pending with driver")
		}
		if depth == 0 {
			return
		}
		for _, s := range steps {
			clone, err := request.RestoreRequest(r.ID(), r.CustomerID(), r.Driver(), r.Status(),
				r.Details(), r.CreatedAt(), r.UpdatedAt())
			require.NoError(t, err)
			if s(clone) == nil {
				explore(clone, depth-1)
			}
		}
	}

	explore(newPendingRequest(t, now), 5)
}
