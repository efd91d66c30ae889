package queries

import (
	"errors"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetMyDriverQueryIsNotConstructed = errors.New(
		"GetMyDriverQuery must be created via NewGetMyDriverQuery constructor",
	)
	ErrListDriversQueryIsNotConstructed = errors.New(
		"ListDriversQuery must be created via NewListDriversQuery constructor",
	)
)

// GetMyDriverQuery reads the driver profile linked to the actor.
type GetMyDriverQuery struct {
	actor principal.Principal
	guard guard.ConstructorGuard
}

func NewGetMyDriverQuery(actor principal.Principal) (GetMyDriverQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyDriverQuery{}, err
	}
	return GetMyDriverQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDriverQueryIsNotConstructed)
}

func (q GetMyDriverQuery) Actor() principal.Principal {
	return q.actor
}

// ListDriversQuery lists every profile for staff and the actor's own profile otherwise.
type ListDriversQuery struct {
	actor principal.Principal
	guard guard.ConstructorGuard
}

func NewListDriversQuery(actor principal.Principal) (ListDriversQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDriversQuery{}, err
	}
	return ListDriversQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Actor() principal.Principal {
	return q.actor
}
