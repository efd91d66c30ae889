package queries

import (
	"errors"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var ErrListDriverRequestsQueryIsNotConstructed = errors.New(
	"ListDriverRequestsQuery must be created via NewListDriverRequestsQuery constructor",
)

// ListDriverRequestsQuery lists the requests assigned to the actor's own driver profile.
type ListDriverRequestsQuery struct {
	actor principal.Principal
	guard guard.ConstructorGuard
}

func NewListDriverRequestsQuery(actor principal.Principal) (ListDriverRequestsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDriverRequestsQuery{}, err
	}
	return ListDriverRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDriverRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListDriverRequestsQueryIsNotConstructed)
}

func (q ListDriverRequestsQuery) Actor() principal.Principal {
	return q.actor
}
