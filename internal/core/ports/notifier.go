package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/principal"
	"laundry/internal/core/domain/model/request"
)

// Notifier fans lifecycle events out to email and in-app notifications.
// It is invoked after the state change is committed and never fails the caller.
type Notifier interface {
	NewRequest(ctx context.Context, req *request.Request)
	StatusChanged(ctx context.Context, req *request.Request, old request.Status)
	DriverAssigned(ctx context.Context, req *request.Request)
	UserRegistered(ctx context.Context, user principal.Principal)
	SignupConfirmed(ctx context.Context, user principal.Principal, joined time.Time)
}
