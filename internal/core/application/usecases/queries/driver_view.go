package queries

import (
	"database/sql"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverView is the read model of a driver profile. Location is nil until the
// driver reports one.
type DriverView struct {
	ID                 kernel.UUID
	PrincipalID        *kernel.UUID
	Name               string
	Phone              string
	Location           *kernel.Location
	IsAvailable        bool
	LastLocationUpdate time.Time
}

const driverColumns = `
	id,
	principal_id,
	name,
	phone,
	latitude,
	longitude,
	is_available,
	last_location_update`

func scanDrivers(rows *sql.Rows) ([]DriverView, error) {
	defer rows.Close()

	views := make([]DriverView, 0)
	for rows.Next() {
		var view DriverView
		var id uuid.UUID
		var principalID uuid.NullUUID
		var latitude, longitude sql.NullFloat64

		err := rows.Scan(
			&id,
			&principalID,
			&view.Name,
			&view.Phone,
			&latitude,
			&longitude,
			&view.IsAvailable,
			&view.LastLocationUpdate,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.PrincipalID, err = nullableUUID(principalID); err != nil {
			return nil, err
		}

		if latitude.Valid && longitude.Valid {
			loc, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
			if locErr != nil {
				return nil, locErr
			}
			view.Location = &loc
		}

		view.LastLocationUpdate = view.LastLocationUpdate.UTC()
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
