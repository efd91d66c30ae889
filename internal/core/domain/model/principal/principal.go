// Package principal models the authenticated actors of the laundry service:
// customers, drivers and staff. Principals are issued by the external auth
// system; the core only reads them.
package principal

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when using a zero-value Principal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an authenticated actor identified by a unique id and an email.
// The email may be empty for accounts that never provided one.
type Principal struct {
	id      kernel.UUID
	email   string
	name    string
	isStaff bool
	guard   guard.ConstructorGuard
}

// NewPrincipal builds a Principal. Only the id is mandatory; the email is trimmed.
func NewPrincipal(id kernel.UUID, email string, name string, isStaff bool) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:      id,
		email:   strings.TrimSpace(email),
		name:    strings.TrimSpace(name),
		isStaff: isStaff,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrPrincipalIsNotConstructed for the zero value.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) ID() kernel.UUID {
	return p.id
}

func (p Principal) Email() string {
	return p.email
}

func (p Principal) Name() string {
	return p.name
}

// IsStaff reports staff/admin capability.
func (p Principal) IsStaff() bool {
	return p.isStaff
}

// HasEmail reports whether the principal can be reached by email.
func (p Principal) HasEmail() bool {
	return p.email != ""
}

// DisplayName falls back from the name to the email.
func (p Principal) DisplayName() string {
	if p.name != "" {
		return p.name
	}
	return p.email
}

// Is reports whether p is the principal identified by id.
func (p Principal) Is(id kernel.UUID) bool {
	return p.id.IsEqual(id)
}
