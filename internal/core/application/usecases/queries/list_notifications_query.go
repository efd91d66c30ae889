package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/guard"
)

// SummaryLimit bounds the body excerpt used as a summary.
const SummaryLimit = 180

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery lists the notifications owned by the actor or
// addressed to the actor's email, newest first.
type ListNotificationsQuery struct {
	actor principal.Principal
	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(actor principal.Principal) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Actor() principal.Principal {
	return q.actor
}

// NotificationView is the read model of a notification.
//
// Summary is "Request #<id> - <customer name> - <status>" when the related
// request exists, otherwise the plain body cut at SummaryLimit runes, otherwise the title.
type NotificationView struct {
	ID               kernel.UUID
	Email            string
	Kind             notification.Kind
	Title            string
	Body             string
	RelatedRequestID *kernel.UUID
	Metadata         map[string]string
	IsRead           bool
	CreatedAt        time.Time
	Summary          string
}
