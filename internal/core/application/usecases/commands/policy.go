package commands

import "laundry/internal/core/domain/model/request"

// Policy holds the configurable lifecycle rules.
//
// AssignRequiresStaff restricts assignment to staff; when false any
// authenticated principal may assign a driver. ReassignMode decides from which
// statuses a request accepts a (new) driver.
type Policy struct {
	AssignRequiresStaff bool
	ReassignMode        request.ReassignMode
}

// DefaultPolicy keeps assignment open to any principal and from any status.
func DefaultPolicy() Policy {
	return Policy{
		AssignRequiresStaff: false,
		ReassignMode:        request.ReassignAny,
	}
}
