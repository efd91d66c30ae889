package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
type RequestRepository interface {
	// Add persists a new request.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request.
	// Returns an ObjectNotFoundError when the request does not exist.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by id without locking it.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetForUpdate retrieves a request and locks its row until the surrounding
	// transaction ends, so that a read-validate-write sequence on the status
	// cannot interleave with another one.
	//
	// Example:
	//   uow.Begin(ctx)
	//   req, err := uow.RequestRepository().GetForUpdate(ctx, id)
	//   old, err := req.UpdateStatus(request.PickedUp, time.Now())
	//   err = uow.RequestRepository().Update(ctx, req)
	//   err = uow.Commit(ctx)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*request.Request, error)
}
