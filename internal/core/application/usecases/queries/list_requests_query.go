package queries

import (
	"errors"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

var ErrListRequestsQueryIsNotConstructed = errors.New(
	"ListRequestsQuery must be created via NewListRequestsQuery constructor",
)

// ListRequestsQuery lists the requests visible to the actor: every request for
// staff, the actor's own requests otherwise.
//
// Example:
//
//	query, err := NewListRequestsQuery(actor)
//	handler := NewListRequestsQueryHandler(db)
//
//	requests, err := handler.Handle(ctx, query)
type ListRequestsQuery struct {
	actor principal.Principal
	guard guard.ConstructorGuard
}

func NewListRequestsQuery(actor principal.Principal) (ListRequestsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListRequestsQuery{}, err
	}
	return ListRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsQueryIsNotConstructed)
}

func (q ListRequestsQuery) Actor() principal.Principal {
	return q.actor
}
