package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

const updateStatusAction = "update request status"

// UpdateRequestStatusCommandHandler applies status updates from staff or the assigned driver.
type UpdateRequestStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

func NewUpdateRequestStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
) UpdateRequestStatusCommandHandler {
	return UpdateRequestStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle locks the request row, authorizes the actor, applies the transition and
// commits before notifying. The lock makes two concurrent updates validate
// against the committed status one after the other.
func (h UpdateRequestStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateRequestStatusCommand,
) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	req, err := requestRepo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	if err = h.authorize(ctx, uow.DriverRepository(), command, req); err != nil {
		return nil, err
	}

	old, err := req.UpdateStatus(command.Status(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.StatusChanged(ctx, req, old)
	return req, nil
}

// authorize admits staff and the principal linked to the currently assigned driver.
func (h UpdateRequestStatusCommandHandler) authorize(
	ctx context.Context,
	drivers ports.DriverRepository,
	command UpdateRequestStatusCommand,
	req *request.Request,
) error {
	actor := command.Actor()
	if actor.IsStaff() {
		return nil
	}

	driverID := req.Driver()
	if driverID == nil {
		return errs.NewForbiddenError(updateStatusAction, "request has no assigned driver")
	}

	d, err := drivers.Get(ctx, *driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenError(updateStatusAction, "only the assigned driver can update the status")
	}
	if err != nil {
		return err
	}

	if !d.IsLinkedTo(actor.ID()) {
		return errs.NewForbiddenError(updateStatusAction, "only the assigned driver can update the status")
	}
	return nil
}
