package commands

import (
	"context"
	"strings"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AnnounceSignupCommandHandler notifies staff about a new user and welcomes the user.
type AnnounceSignupCommandHandler struct {
	directory ports.PrincipalDirectory
	notifier  ports.Notifier
}

func NewAnnounceSignupCommandHandler(
	directory ports.PrincipalDirectory,
	notifier ports.Notifier,
) AnnounceSignupCommandHandler {
	return AnnounceSignupCommandHandler{
		directory: directory,
		notifier:  notifier,
	}
}

// Handle is allowed for staff and for the new user. An unknown email is an
// ObjectNotFoundError.
func (h AnnounceSignupCommandHandler) Handle(ctx context.Context, command AnnounceSignupCommand) (principal.Principal, error) {
	if err := command.Validate(); err != nil {
		return principal.Principal{}, err
	}

	actor := command.Actor()
	if !actor.IsStaff() && !strings.EqualFold(actor.Email(), command.Email()) {
		return principal.Principal{}, errs.NewForbiddenError("announce signup", "only staff or the new user")
	}

	user, ok, err := h.directory.FindByEmail(ctx, command.Email())
	if err != nil {
		return principal.Principal{}, err
	}
	if !ok {
		return principal.Principal{}, errs.NewObjectNotFoundError("user", command.Email())
	}

	h.notifier.UserRegistered(ctx, user)
	h.notifier.SignupConfirmed(ctx, user, command.Joined())
	return user, nil
}
