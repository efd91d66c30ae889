package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/pkg/errs"
)

// CreateDriverCommandHandler stores new driver profiles.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with a ConflictError when the linked principal already owns a
// profile. The repository enforces the same rule with a unique index, so a
// concurrent duplicate also ends as a conflict.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, command CreateDriverCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(command.DriverID(), command.PrincipalID(), command.Name(), command.Phone(), time.Now())
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

	driverRepo := uow.DriverRepository()

	if principalID, linked := d.PrincipalID(); linked {
		exists, existsErr := driverRepo.ExistsForPrincipal(ctx, principalID)
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, errs.NewConflictError("driver", "a driver profile already exists for this user")
		}
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
