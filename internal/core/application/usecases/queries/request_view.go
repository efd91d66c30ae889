// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the tables directly and return flat read models.
package queries

import (
	"database/sql"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestView is the read model of a laundry request.
type RequestView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DriverID         *kernel.UUID
	Status           request.Status
	CustomerName     string
	Phone            string
	Address          string
	ItemsDescription string
	ServiceType      string
	PickupTime       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const requestColumns = `
	id,
	customer_id,
	driver_id,
	status,
	customer_name,
	phone,
	address,
	items_description,
	service_type,
	pickup_time,
	created_at,
	updated_at`

func scanRequests(rows *sql.Rows) ([]RequestView, error) {
	defer rows.Close()

	views := make([]RequestView, 0)
	for rows.Next() {
		var view RequestView
		var id, customerID uuid.UUID
		var driverID uuid.NullUUID
		var status string

		err := rows.Scan(
			&id,
			&customerID,
			&driverID,
			&status,
			&view.CustomerName,
			&view.Phone,
			&view.Address,
			&view.ItemsDescription,
			&view.ServiceType,
			&view.PickupTime,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.DriverID, err = nullableUUID(driverID); err != nil {
			return nil, err
		}
		if view.Status, err = request.ParseStatus(status); err != nil {
			return nil, err
		}

		view.CreatedAt = view.CreatedAt.UTC()
		view.UpdatedAt = view.UpdatedAt.UTC()
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func nullableUUID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
