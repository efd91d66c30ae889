package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand places a new laundry request on behalf of the acting customer.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(actor, request.Details{
//	    CustomerName: "Ada", Address: "1 Main St", ItemsDescription: "3 shirts",
//	})
//	if err != nil {
//	    return err
//	}
//	req, err := handler.Handle(ctx, cmd)
type CreateRequestCommand struct {
	requestID kernel.UUID
	actor     principal.Principal
	details   request.Details

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand generates the request id and checks the actor.
// Field validation is left to the aggregate.
func NewCreateRequestCommand(actor principal.Principal, details request.Details) (CreateRequestCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateRequestCommand{}, err
	}

	return CreateRequestCommand{
		requestID: kernel.NewUUID(),
		actor:     actor,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateRequestCommand) Actor() principal.Principal {
	return c.actor
}

func (c CreateRequestCommand) Details() request.Details {
	return c.details
}
