package driver

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a driver profile.
//
// Business rules:
//   - every location or availability write refreshes lastLocationUpdate
//   - new drivers are available and have no known location
type Driver struct {
	id                 kernel.UUID
	principalID        *kernel.UUID
	name               string
	phone              string
	location           *kernel.Location
	isAvailable        bool
	lastLocationUpdate time.Time

	isConstructed bool
}

// NewDriver creates an available driver with no location. principalID may be nil
// for profiles created by staff on behalf of someone without an account.
func NewDriver(id kernel.UUID, principalID *kernel.UUID, name string, phone string, now time.Time) (*Driver, error) {
	d := &Driver{
		phone:              strings.TrimSpace(phone),
		isAvailable:        true,
		lastLocationUpdate: now.UTC(),
		isConstructed:      true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setPrincipalID(principalID),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	principalID *kernel.UUID,
	name string,
	phone string,
	location *kernel.Location,
	isAvailable bool,
	lastLocationUpdate time.Time,
) (*Driver, error) {
	d := &Driver{
		phone:              strings.TrimSpace(phone),
		isAvailable:        isAvailable,
		lastLocationUpdate: lastLocationUpdate.UTC(),
		isConstructed:      true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setPrincipalID(principalID),
		d.setName(name),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the driver came out of a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

// PrincipalID returns the linked principal, if any.
func (d *Driver) PrincipalID() (kernel.UUID, bool) {
	if d.principalID == nil {
		return kernel.UUID{}, false
	}
	return *d.principalID, true
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Phone() string {
	return d.phone
}

// Location returns the last reported location, if any.
func (d *Driver) Location() (kernel.Location, bool) {
	if d.location == nil {
		return kernel.Location{}, false
	}
	return *d.location, true
}

func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

func (d *Driver) LastLocationUpdate() time.Time {
	return d.lastLocationUpdate
}

// IsLinkedTo reports whether principalID operates this driver profile.
func (d *Driver) IsLinkedTo(principalID kernel.UUID) bool {
	return d.principalID != nil && d.principalID.IsEqual(principalID)
}

// LocationUpdate is a partial update; nil fields are left unchanged.
type LocationUpdate struct {
	Location    *kernel.Location
	IsAvailable *bool
}

// UpdateLocation applies the update and refreshes the last location timestamp,
// even when the update carries no field.
func (d *Driver) UpdateLocation(update LocationUpdate, now time.Time) error {
	if update.Location != nil {
		if err := d.setLocation(update.Location); err != nil {
			return err
		}
	}
	if update.IsAvailable != nil {
		d.isAvailable = *update.IsAvailable
	}
	d.lastLocationUpdate = now.UTC()
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setPrincipalID(principalID *kernel.UUID) error {
	if principalID == nil {
		return nil
	}
	if err := principalID.Validate(); err != nil {
		return err
	}
	id := *principalID
	d.principalID = &id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setLocation(location *kernel.Location) error {
	if location == nil {
		d.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	d.location = &loc
	return nil
}
