package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for in-app notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error

	Update(ctx context.Context, aggregate *notification.Notification) error

	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Delete removes one notification. Returns an ObjectNotFoundError when it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteForRecipient removes every notification owned by principalID or
	// addressed to email (case-insensitive) and returns how many were removed.
	// An empty email matches nothing.
	DeleteForRecipient(ctx context.Context, principalID kernel.UUID, email string) (int64, error)

	// ListAll returns every notification, oldest first.
	ListAll(ctx context.Context) ([]*notification.Notification, error)
}
