package request

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// ReassignMode decides from which statuses Assign is accepted.
//
// The default assigns from any status (ReassignAny). Deployments that
// want the lifecycle to stay monotonic pick ReassignOpen or ReassignPending.
type ReassignMode int

const (
	// ReassignAny accepts assignment from every status, including terminal ones.
	ReassignAny ReassignMode = iota
	// ReassignOpen accepts assignment from Pending and Assigned (driver swap).
	ReassignOpen
	// ReassignPending accepts assignment from Pending only.
	ReassignPending
)

// ParseReassignMode reads "any", "open" or "pending"; the empty string means ReassignAny.
func ParseReassignMode(s string) (ReassignMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return ReassignAny, nil
	case "open":
		return ReassignOpen, nil
	case "pending":
		return ReassignPending, nil
	default:
		return ReassignAny, errs.NewValueIsInvalidErrorWithCause("reassign mode", fmt.Errorf("%q is not one of any, open, pending", s))
	}
}

// Allows reports whether a request in status s may be assigned.
func (m ReassignMode) Allows(s Status) bool {
	switch m {
	case ReassignAny:
		return true
	case ReassignOpen:
		return s == Pending || s == Assigned
	case ReassignPending:
		return s == Pending
	default:
		return false
	}
}

func (m ReassignMode) String() string {
	switch m {
	case ReassignAny:
		return "any"
	case ReassignOpen:
		return "open"
	case ReassignPending:
		return "pending"
	default:
		return "unknown"
	}
}
