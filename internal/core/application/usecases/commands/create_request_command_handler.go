package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/ports"
)

// CreateRequestCommandHandler stores a new pending request and announces it.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	notifier   ports.Notifier
}

func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory, notifier ports.Notifier) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle creates the request with status pending and no driver, commits, and
// then triggers the new request notifications for the customer and staff.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, command CreateRequestCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	req, err := request.NewRequest(command.RequestID(), command.Actor().ID(), command.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NewRequest(ctx, req)
	return req, nil
}
