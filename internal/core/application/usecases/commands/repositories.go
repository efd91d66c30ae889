// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
// Notifications are dispatched only after the transaction is committed.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// LifecycleUoW spans requests and drivers. Used by assignment and status updates,
	// which lock the request row and read the driver in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   req, err := uow.RequestRepository().GetForUpdate(ctx, requestID)
	//   d, err := uow.DriverRepository().Get(ctx, driverID)
	//   // ... mutate and update
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		RequestRepoFactory
		DriverRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// SanitizeUoW spans notifications and requests.
	SanitizeUoW interface {
		TxManager
		NotificationRepoFactory
		RequestRepoFactory
	}

	// SanitizeUoWFactory creates new sanitize unit of work instances.
	SanitizeUoWFactory interface {
		Create() SanitizeUoW
	}
)
