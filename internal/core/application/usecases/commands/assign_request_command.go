package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var ErrAssignRequestCommandIsNotConstructed = errors.New(
	"AssignRequestCommand must be created via NewAssignRequestCommand constructor",
)

// AssignRequestCommand sets the driver of a request and moves it to assigned.
type AssignRequestCommand struct {
	actor     principal.Principal
	requestID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRequestCommand(
	actor principal.Principal,
	requestID kernel.UUID,
	driverID kernel.UUID,
) (AssignRequestCommand, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate(), driverID.Validate()); err != nil {
		return AssignRequestCommand{}, err
	}

	return AssignRequestCommand{
		actor:     actor,
		requestID: requestID,
		driverID:  driverID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRequestCommand) Validate() error {
	return c.guard.Validate(ErrAssignRequestCommandIsNotConstructed)
}

func (c AssignRequestCommand) Actor() principal.Principal {
	return c.actor
}

func (c AssignRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AssignRequestCommand) DriverID() kernel.UUID {
	return c.driverID
}
