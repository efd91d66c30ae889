// Package requestrepo persists laundry request aggregates. It maps domain
// requests to the requests table and back.
package requestrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO is the database row of a laundry request. Status is stored as its
// wire code so that read-side queries can return it unchanged. Timestamps come
// from the aggregate, not from GORM.
type RequestDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(20);index;not null"`
	CustomerName     string     `gorm:"type:varchar(255);not null"`
	Phone            string     `gorm:"type:varchar(32)"`
	Address          string     `gorm:"type:text;not null"`
	ItemsDescription string     `gorm:"type:text"`
	ServiceType      string     `gorm:"type:varchar(64)"`
	PickupTime       *time.Time
	CreatedAt        time.Time `gorm:"index;not null;autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention.
func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(aggregate *request.Request) RequestDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	details := aggregate.Details()

	return RequestDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		DriverID:         driverID,
		Status:           aggregate.Status().String(),
		CustomerName:     details.CustomerName,
		Phone:            details.Phone,
		Address:          details.Address,
		ItemsDescription: details.ItemsDescription,
		ServiceType:      details.ServiceType,
		PickupTime:       details.PickupTime,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(id, customerID, driverID, status, request.Details{
		CustomerName:     dto.CustomerName,
		Phone:            dto.Phone,
		Address:          dto.Address,
		ItemsDescription: dto.ItemsDescription,
		ServiceType:      dto.ServiceType,
		PickupTime:       dto.PickupTime,
	}, dto.CreatedAt, dto.UpdatedAt)
}
