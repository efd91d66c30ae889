package commands

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAnnounceSignupCommandIsNotConstructed = errors.New(
	"AnnounceSignupCommand must be created via NewAnnounceSignupCommand constructor",
)

// AnnounceSignupCommand runs the registration notifications for a user that the
// auth system has just created.
type AnnounceSignupCommand struct {
	actor  principal.Principal
	email  string
	joined time.Time

	guard guard.ConstructorGuard
}

func NewAnnounceSignupCommand(actor principal.Principal, email string, joined time.Time) (AnnounceSignupCommand, error) {
	if err := actor.Validate(); err != nil {
		return AnnounceSignupCommand{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return AnnounceSignupCommand{}, errs.NewValueIsRequiredError("email")
	}
	if joined.IsZero() {
		joined = time.Now()
	}

	return AnnounceSignupCommand{
		actor:  actor,
		email:  email,
		joined: joined.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AnnounceSignupCommand) Validate() error {
	return c.guard.Validate(ErrAnnounceSignupCommandIsNotConstructed)
}

func (c AnnounceSignupCommand) Actor() principal.Principal {
	return c.actor
}

func (c AnnounceSignupCommand) Email() string {
	return c.email
}

func (c AnnounceSignupCommand) Joined() time.Time {
	return c.joined
}
