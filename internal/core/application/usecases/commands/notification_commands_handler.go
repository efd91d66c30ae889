package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a visible notification as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for notifications the actor cannot see.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, command MarkNotificationReadCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	n, err := visibleNotification(ctx, repo, command.Actor(), command.NotificationID())
	if err != nil {
		return err
	}

	n.MarkRead()

	if err = repo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteNotificationCommandHandler deletes a visible notification.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for notifications the actor cannot see.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, command DeleteNotificationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	n, err := visibleNotification(ctx, repo, command.Actor(), command.NotificationID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, n.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ClearNotificationsCommandHandler deletes every notification of the actor.
type ClearNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewClearNotificationsCommandHandler(uowFactory NotificationUoWFactory) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle removes the notifications owned by the actor or addressed to its email
// and returns how many were removed.
func (h ClearNotificationsCommandHandler) Handle(ctx context.Context, actor principal.Principal) (int64, error) {
	if err := actor.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.NotificationRepository().DeleteForRecipient(ctx, actor.ID(), actor.Email())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

func visibleNotification(
	ctx context.Context,
	repo ports.NotificationRepository,
	actor principal.Principal,
	id kernel.UUID,
) (*notification.Notification, error) {
	n, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.IsVisibleTo(actor) {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	return n, nil
}
