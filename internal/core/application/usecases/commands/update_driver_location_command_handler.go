package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// UpdateDriverLocationCommandHandler updates the actor's own driver profile.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with an ObjectNotFoundError when the actor owns no profile. A
// single coordinate is merged with the stored location; without a stored
// location both coordinates are required.
func (h UpdateDriverLocationCommandHandler) Handle(
	ctx context.Context,
	command UpdateDriverLocationCommand,
) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetByPrincipal(ctx, command.Actor().ID())
	if err != nil {
		return nil, err
	}

	update, err := buildLocationUpdate(d, command)
	if err != nil {
		return nil, err
	}

	if err = d.UpdateLocation(update, time.Now()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func buildLocationUpdate(d *driver.Driver, command UpdateDriverLocationCommand) (driver.LocationUpdate, error) {
	var update driver.LocationUpdate

	if available, ok := command.IsAvailable(); ok {
		update.IsAvailable = &available
	}

	lat, hasLat := command.Latitude()
	long, hasLong := command.Longitude()
	if !hasLat && !hasLong {
		return update, nil
	}

	current, hasCurrent := d.Location()
	switch {
	case hasLat && hasLong:
	case hasCurrent && hasLat:
		long = current.Longitude()
	case hasCurrent && hasLong:
		lat = current.Latitude()
	case hasLat:
		return update, errs.NewValueIsRequiredError("longitude")
	default:
		return update, errs.NewValueIsRequiredError("latitude")
	}

	loc, err := kernel.NewLocation(lat, long)
	if err != nil {
		return update, err
	}
	update.Location = &loc
	return update, nil
}
