// Package userrepo mirrors the principals issued by the auth system into the
// users table and reads them back as a principal directory.
package userrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// UserDTO is the database row of a principal.
type UserDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email   string    `gorm:"type:varchar(255);index"`
	Name    string    `gorm:"type:varchar(255)"`
	IsStaff bool      `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(p principal.Principal) UserDTO {
	return UserDTO{
		ID:      p.ID().Bytes(),
		Email:   p.Email(),
		Name:    p.Name(),
		IsStaff: p.IsStaff(),
	}
}

func toDomain(dto UserDTO) (principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return principal.Principal{}, err
	}
	return principal.NewPrincipal(id, dto.Email, dto.Name, dto.IsStaff)
}
