package userrepo

import (
	"context"
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements PrincipalDirectory using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save inserts the principal or refreshes its email, name and staff flag.
func (r *GormUserRepository) Save(ctx context.Context, p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "name", "is_staff"}),
	}).Create(&dto).Error
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (principal.Principal, bool, error) {
	if err := id.Validate(); err != nil {
		return principal.Principal{}, false, err
	}
	return r.first(r.db.WithContext(ctx).Where("id = ?", id.Bytes()))
}

// FindByEmail matches the email case-insensitively.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (principal.Principal, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return principal.Principal{}, false, nil
	}
	return r.first(r.db.WithContext(ctx).Where("lower(email) = lower(?)", email))
}

// ListStaff returns staff principals ordered by email.
func (r *GormUserRepository) ListStaff(ctx context.Context) ([]principal.Principal, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("is_staff").Order("email, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	staff := make([]principal.Principal, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		staff = append(staff, p)
	}

	return staff, nil
}

func (r *GormUserRepository) first(query *gorm.DB) (principal.Principal, bool, error) {
	var dto UserDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return principal.Principal{}, false, nil
		}
		return principal.Principal{}, false, err
	}

	p, err := toDomain(dto)
	if err != nil {
		return principal.Principal{}, false, err
	}
	return p, true, nil
}
