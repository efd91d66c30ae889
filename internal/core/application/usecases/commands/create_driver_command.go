package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver profile.
//
// Non-staff actors always get a profile linked to themselves. Staff may link the
// profile to another principal or leave it unlinked.
type CreateDriverCommand struct {
	driverID    kernel.UUID
	actor       principal.Principal
	principalID *kernel.UUID
	name        string
	phone       string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand resolves which principal the profile is linked to.
// linkTo is only honoured for staff.
func NewCreateDriverCommand(
	actor principal.Principal,
	name string,
	phone string,
	linkTo *kernel.UUID,
) (CreateDriverCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return CreateDriverCommand{}, driver.ErrNameIsRequired
	}

	var principalID *kernel.UUID
	switch {
	case !actor.IsStaff():
		id := actor.ID()
		principalID = &id
	case linkTo != nil:
		if err := linkTo.Validate(); err != nil {
			return CreateDriverCommand{}, err
		}
		id := *linkTo
		principalID = &id
	}

	return CreateDriverCommand{
		driverID:    kernel.NewUUID(),
		actor:       actor,
		principalID: principalID,
		name:        name,
		phone:       strings.TrimSpace(phone),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Actor() principal.Principal {
	return c.actor
}

// PrincipalID is the principal the new profile is linked to, or nil.
func (c CreateDriverCommand) PrincipalID() *kernel.UUID {
	if c.principalID == nil {
		return nil
	}
	id := *c.principalID
	return &id
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Phone() string {
	return c.phone
}
