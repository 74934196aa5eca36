package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The numeric values are persisted and
// must not be reordered.
//
//	pending ─> confirmed ─> preparing ─> ready ─> assigned ─> picking_up ─> in_transit ─> delivered
//	   │           │                       ^          │
//	   └───────────┴─> cancelled           └──────────┘ (release)
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Assigned
	PickingUp
	InTransit
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Confirmed: "confirmed",
	Preparing: "preparing",
	Ready:     "ready",
	Assigned:  "assigned",
	PickingUp: "picking_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Assigned, PickingUp, InTransit, Delivered, Cancelled}
}

// ParseStatus maps a wire name such as "picking_up" to its Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the declared constants.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// HasDriver reports whether an order in status s must carry a driver.
func (s Status) HasDriver() bool {
	switch s { //nolint:exhaustive // only driver-held statuses matter
	case Assigned, PickingUp, InTransit, Delivered:
		return true
	default:
		return false
	}
}

// ValidateCanHaveDriver checks the driver/status invariant for a given assignment.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && !s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}
	if !hasDriver && s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}
	return nil
}
