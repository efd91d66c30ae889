package requestrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing request. Every column is written so that clearing
// the driver or the pickup time reaches the row.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("request", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a request with SELECT ... FOR UPDATE. It only locks
// when called inside a transaction.
func (r *GormRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormRequestRepository) get(db *gorm.DB, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
