package ports

import (
	"context"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver. Returns a ConflictError when the linked
	// principal already owns a profile.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByPrincipal retrieves the profile linked to principalID.
	GetByPrincipal(ctx context.Context, principalID kernel.UUID) (*driver.Driver, error)

	// ExistsForPrincipal reports whether principalID already owns a profile.
	ExistsForPrincipal(ctx context.Context, principalID kernel.UUID) (bool, error)
}
