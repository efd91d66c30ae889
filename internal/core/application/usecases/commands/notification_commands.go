package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
	ErrDeleteNotificationCommandIsNotConstructed = errors.New(
		"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
	)
)

// MarkNotificationReadCommand flags one of the actor's notifications as read.
type MarkNotificationReadCommand struct {
	actor          principal.Principal
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(
	actor principal.Principal,
	notificationID kernel.UUID,
) (MarkNotificationReadCommand, error) {
	if err := errors.Join(actor.Validate(), notificationID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Actor() principal.Principal {
	return c.actor
}

func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// DeleteNotificationCommand removes one of the actor's notifications.
type DeleteNotificationCommand struct {
	actor          principal.Principal
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteNotificationCommand(
	actor principal.Principal,
	notificationID kernel.UUID,
) (DeleteNotificationCommand, error) {
	if err := errors.Join(actor.Validate(), notificationID.Validate()); err != nil {
		return DeleteNotificationCommand{}, err
	}
	return DeleteNotificationCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

func (c DeleteNotificationCommand) Actor() principal.Principal {
	return c.actor
}

func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
