package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
)

// PrincipalDirectory reads accounts owned by the auth system. A missing
// principal is reported through the boolean, never as an error.
//
// Principals are recorded when they first call the API with a valid token, so
// an account that never did is unknown here. Staff addresses that must always
// be reached are configured on the notifier instead (STAFF_EMAILS).
type PrincipalDirectory interface {
	Get(ctx context.Context, id kernel.UUID) (principal.Principal, bool, error)

	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (principal.Principal, bool, error)

	// ListStaff returns every principal with staff capability.
	ListStaff(ctx context.Context) ([]principal.Principal, error)
}
