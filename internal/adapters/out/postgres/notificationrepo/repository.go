package notificationrepo

import (
	"context"
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns: read flag, text, related request and metadata.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("is_read", "title", "body", "related_request_id", "metadata").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes one notification.
func (r *GormNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}

// DeleteForRecipient removes the notifications owned by principalID or
// addressed to email, ignoring case.
func (r *GormNotificationRepository) DeleteForRecipient(
	ctx context.Context,
	principalID kernel.UUID,
	email string,
) (int64, error) {
	if err := principalID.Validate(); err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).Where("principal_id = ?", principalID.Bytes())
	if email = strings.TrimSpace(email); email != "" {
		query = query.Or("lower(email) = lower(?)", email)
	}

	result := query.Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}

// ListAll returns every notification, oldest first.
func (r *GormNotificationRepository) ListAll(ctx context.Context) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}

	return list, nil
}
