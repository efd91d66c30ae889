package driverrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository. Duplicate
// principals are only reported as conflicts when the connection was opened
// with TranslateError.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("driver", "a driver profile already exists for this user", err)
		}
		return err
	}

	return nil
}

// Update saves an existing driver, including cleared fields.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("driver", "a driver profile already exists for this user", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPrincipal retrieves the profile linked to principalID.
func (r *GormDriverRepository) GetByPrincipal(ctx context.Context, principalID kernel.UUID) (*driver.Driver, error) {
	if err := principalID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "principal_id = ?", principalID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver for principal", principalID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForPrincipal reports whether principalID already owns a profile.
func (r *GormDriverRepository) ExistsForPrincipal(ctx context.Context, principalID kernel.UUID) (bool, error) {
	if err := principalID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("principal_id = ?", principalID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
