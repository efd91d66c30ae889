package request

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request was not built by NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Details holds the descriptive fields of a request. They carry no lifecycle invariants;
// only CustomerName and Address are mandatory.
type Details struct {
	CustomerName     string
	Phone            string
	Address          string
	ItemsDescription string
	ServiceType      string
	PickupTime       *time.Time
}

func (d Details) normalized() Details {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.ItemsDescription = strings.TrimSpace(d.ItemsDescription)
	d.ServiceType = strings.TrimSpace(d.ServiceType)
	if d.PickupTime != nil {
		t := d.PickupTime.UTC()
		d.PickupTime = &t
	}
	return d
}

func (d Details) validate() error {
	var list []error
	if d.CustomerName == "" {
		list = append(list, errs.NewValueIsRequiredError("customer name"))
	}
	if d.Address == "" {
		list = append(list, errs.NewValueIsRequiredError("address"))
	}
	return errors.Join(list...)
}

// Request is a laundry pickup/delivery request and the aggregate root of the lifecycle.
//
// Invariants:
//   - id and createdAt never change after construction
//   - the driver is set whenever the status is assigned, picked_up or in_progress
//   - a pending request has no driver
//   - updatedAt is refreshed by every mutation
type Request struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID
	status     Status
	details    Details
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewRequest creates a pending request without a driver for the given customer.
func NewRequest(id kernel.UUID, customerID kernel.UUID, details Details, now time.Time) (*Request, error) {
	r := &Request{
		status:        Pending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setDetails(details),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest rebuilds a request from persistence and re-checks the status/driver rule.
func RestoreRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	details Details,
	createdAt time.Time,
	updatedAt time.Time,
) (*Request, error) {
	r := &Request{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setDetails(details),
		r.setStatus(status, driverID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the request came out of a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) CustomerID() kernel.UUID {
	return r.customerID
}

// Driver returns the assigned driver id, or nil.
func (r *Request) Driver() *kernel.UUID {
	if r.driverID == nil {
		return nil
	}
	id := *r.driverID
	return &id
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) Details() Details {
	return r.details
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsOwnedBy reports whether customerID placed the request.
func (r *Request) IsOwnedBy(customerID kernel.UUID) bool {
	return r.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether driverID is the current driver.
func (r *Request) IsAssignedTo(driverID kernel.UUID) bool {
	return r.driverID != nil && r.driverID.IsEqual(driverID)
}

// Assign sets the driver and moves the request to Assigned.
// mode decides which current statuses accept the assignment.
func (r *Request) Assign(driverID kernel.UUID, mode ReassignMode, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign(mode)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.driverID = &driverID
	r.touch(now)
	return nil
}

// UpdateStatus moves the request along the transition table and returns the previous status.
// Any pair outside the table fails with an InvalidTransitionError and leaves the request untouched.
func (r *Request) UpdateStatus(next Status, now time.Time) (Status, error) {
	newStatus, err := r.status.TransitionTo(next)
	if err != nil {
		return Unknown, err
	}

	old := r.status
	r.status = newStatus
	r.touch(now)
	return old, nil
}

func (r *Request) touch(now time.Time) {
	r.updatedAt = now.UTC()
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	r.customerID = customerID
	return nil
}

func (r *Request) setDetails(details Details) error {
	details = details.normalized()
	if err := details.validate(); err != nil {
		return err
	}
	r.details = details
	return nil
}

func (r *Request) setStatus(status Status, driverID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return err
	}
	r.status = status
	if driverID != nil {
		id := *driverID
		r.driverID = &id
	}
	return nil
}
