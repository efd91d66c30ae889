package request

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of a Request.
//
// Transitions driven by status updates:
//
//	Pending ──(assign)──> Assigned ──> PickedUp ──> InProgress ──> Completed
//	                         │
//	                         └──> Cancelled
//
// Pending is only left through assignment. Completed and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Assigned
	PickedUp
	InProgress
	Completed
	Cancelled
)

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		PickedUp:   "picked_up",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		PickedUp:   "Picked Up",
		InProgress: "In Progress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getAllowedTransitions is the status-update transition table. Pending has no
// entry: it is left through Assign only.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // statuses without successors are absent on purpose
	return map[Status][]Status{
		Assigned:   {PickedUp, Cancelled},
		PickedUp:   {InProgress},
		InProgress: {Completed},
	}
}

// ParseStatus maps a wire code such as "picked_up" to a Status.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for status, c := range getStatusCodes() {
		if c == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", code))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code ("picked_up"), or "unknown".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// Label returns the human-readable name ("Picked Up") used in messages.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions exist.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// RequiresDriver reports whether a request in this status must carry a driver.
func (s Status) RequiresDriver() bool {
	return s == Assigned || s == PickedUp || s == InProgress
}

// CanTransitionTo reports whether next is an allowed successor of s in the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the pair (s, next) is in the transition table
// and an InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}

// ValidateCanHaveDriver checks the status/driver consistency rule:
// driver-bearing statuses require a driver and Pending forbids one.
// Completed and Cancelled accept either.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if !hasDriver && s.RequiresDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}
	if hasDriver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}
	return nil
}

// Assign returns Assigned when mode permits assignment from s.
func (s Status) Assign(mode ReassignMode) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if !mode.Allows(s) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}
