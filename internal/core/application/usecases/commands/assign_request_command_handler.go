package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AssignRequestCommandHandler assigns a driver to a request.
//
// Example:
//
//	handler := NewAssignRequestCommandHandler(uowFactory, notifier, DefaultPolicy())
//	req, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // staff-only assignment is configured
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown request or driver
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the reassign mode rejects the current status
//	}
type AssignRequestCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	policy     Policy
}

func NewAssignRequestCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	policy Policy,
) AssignRequestCommandHandler {
	return AssignRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     policy,
	}
}

// Handle locks the request, checks that the actor is staff or the owner and that
// the driver exists, assigns it and commits.
// Every call that succeeds sends the driver assigned notifications again.
func (h AssignRequestCommandHandler) Handle(ctx context.Context, command AssignRequestCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if h.policy.AssignRequiresStaff && !command.Actor().IsStaff() {
		return nil, errs.NewForbiddenError("assign request", "staff capability required")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	driverRepo := uow.DriverRepository()

	req, err := requestRepo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	// Non-staff only see their own requests; anything else looks missing.
	actor := command.Actor()
	if !actor.IsStaff() && !req.IsOwnedBy(actor.ID()) {
		return nil, errs.NewObjectNotFoundError("request", command.RequestID().String())
	}

	d, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = req.Assign(d.ID(), h.policy.ReassignMode, time.Now()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.DriverAssigned(ctx, req)
	return req, nil
}
