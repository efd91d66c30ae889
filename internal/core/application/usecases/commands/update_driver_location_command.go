package commands

import (
	"errors"
	"math"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand is a partial update of the actor's own driver profile.
// Nil fields are left unchanged.
type UpdateDriverLocationCommand struct {
	actor       principal.Principal
	latitude    *float64
	longitude   *float64
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand range-checks the coordinates that are present.
func NewUpdateDriverLocationCommand(
	actor principal.Principal,
	latitude *float64,
	longitude *float64,
	isAvailable *bool,
) (UpdateDriverLocationCommand, error) {
	var list []error
	list = append(list, actor.Validate())
	if latitude != nil {
		list = append(list, checkRange("latitude", *latitude, kernel.MinLatitude, kernel.MaxLatitude))
	}
	if longitude != nil {
		list = append(list, checkRange("longitude", *longitude, kernel.MinLongitude, kernel.MaxLongitude))
	}
	if err := errors.Join(list...); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return UpdateDriverLocationCommand{
		actor:       actor,
		latitude:    latitude,
		longitude:   longitude,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func checkRange(name string, value, minValue, maxValue float64) error {
	if math.IsNaN(value) || value < minValue || value > maxValue {
		return errs.NewValueIsOutOfRangeError(name, value, minValue, maxValue)
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) Actor() principal.Principal {
	return c.actor
}

// Latitude returns the new latitude, if given.
func (c UpdateDriverLocationCommand) Latitude() (float64, bool) {
	if c.latitude == nil {
		return 0, false
	}
	return *c.latitude, true
}

// Longitude returns the new longitude, if given.
func (c UpdateDriverLocationCommand) Longitude() (float64, bool) {
	if c.longitude == nil {
		return 0, false
	}
	return *c.longitude, true
}

// IsAvailable returns the new availability, if given.
func (c UpdateDriverLocationCommand) IsAvailable() (bool, bool) {
	if c.isAvailable == nil {
		return false, false
	}
	return *c.isAvailable, true
}
