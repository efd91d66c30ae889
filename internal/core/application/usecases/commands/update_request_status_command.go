package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/guard"
)

var ErrUpdateRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateRequestStatusCommand must be created via NewUpdateRequestStatusCommand constructor",
)

// UpdateRequestStatusCommand moves a request along the status transition table.
type UpdateRequestStatusCommand struct {
	actor     principal.Principal
	requestID kernel.UUID
	status    request.Status

	guard guard.ConstructorGuard
}

func NewUpdateRequestStatusCommand(
	actor principal.Principal,
	requestID kernel.UUID,
	status request.Status,
) (UpdateRequestStatusCommand, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate(), status.Validate()); err != nil {
		return UpdateRequestStatusCommand{}, err
	}

	return UpdateRequestStatusCommand{
		actor:     actor,
		requestID: requestID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestStatusCommandIsNotConstructed)
}

func (c UpdateRequestStatusCommand) Actor() principal.Principal {
	return c.actor
}

func (c UpdateRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c UpdateRequestStatusCommand) Status() request.Status {
	return c.status
}
