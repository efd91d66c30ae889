// Package driverrepo persists driver profiles.
package driverrepo

import (
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database row of a driver profile. A principal owns at most
// one profile; unlinked profiles keep a NULL principal_id.
type DriverDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PrincipalID        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Phone              string     `gorm:"type:varchar(32)"`
	Latitude           *float64
	Longitude          *float64
	IsAvailable        bool      `gorm:"not null"`
	LastLocationUpdate time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Phone:              aggregate.Phone(),
		IsAvailable:        aggregate.IsAvailable(),
		LastLocationUpdate: aggregate.LastLocationUpdate(),
	}

	if principalID, ok := aggregate.PrincipalID(); ok {
		raw := principalID.Bytes()
		dto.PrincipalID = &raw
	}

	if loc, ok := aggregate.Location(); ok {
		lat, long := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &long
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var principalID *kernel.UUID
	if dto.PrincipalID != nil {
		pID, principalErr := kernel.UUIDFromBytes((*dto.PrincipalID)[:])
		if principalErr != nil {
			return nil, principalErr
		}
		principalID = &pID
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return driver.RestoreDriver(id, principalID, dto.Name, dto.Phone, location, dto.IsAvailable, dto.LastLocationUpdate)
}
