package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrSanitizeNotificationsCommandIsNotConstructed = errors.New(
	"SanitizeNotificationsCommand must be created via NewSanitizeNotificationsCommand constructor",
)

// SanitizeNotificationsCommand cleans up stored notifications: markup left in
// bodies is stripped and notifications naming "Request #<id>" get the request attached.
type SanitizeNotificationsCommand struct {
	guard guard.ConstructorGuard
}

func NewSanitizeNotificationsCommand() SanitizeNotificationsCommand {
	return SanitizeNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SanitizeNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrSanitizeNotificationsCommandIsNotConstructed)
}

// SanitizeReport summarizes one sanitizer run.
type SanitizeReport struct {
	Scanned   int
	Sanitized int
	Attached  int
	Failed    int
}
