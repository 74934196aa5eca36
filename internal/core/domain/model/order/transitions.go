package order

import "marketplace/internal/core/domain/model/kernel"

type edge struct {
	from Status
	to   Status
}

// transitions is the single table of edges reachable through RequestTransition.
// ready -> assigned and assigned -> ready are absent on purpose: they only happen
// through Claim and Release.
var transitions = map[kernel.Role]map[edge]struct{}{
	kernel.RoleBusiness: {
		{Pending, Confirmed}:   {},
		{Pending, Cancelled}:   {},
		{Confirmed, Preparing}: {},
		{Preparing, Ready}:     {},
	},
	kernel.RoleDriver: {
		{Assigned, PickingUp}:  {},
		{PickingUp, InTransit}: {},
		{InTransit, Delivered}: {},
	},
	kernel.RoleClient: {
		{Pending, Cancelled}:   {},
		{Confirmed, Cancelled}: {},
	},
}

// ValidateTransition checks (from, to) against the table for role.
func ValidateTransition(role kernel.Role, from, to Status) error {
	if _, ok := transitions[role][edge{from: from, to: to}]; !ok {
		return NewInvalidTransitionError(role, from, to)
	}
	return nil
}

// NextStatuses lists the statuses role may move an order to from the given status.
// Tracking screens use it to decide which actions to offer.
func NextStatuses(role kernel.Role, from Status) []Status {
	next := make([]Status, 0, 2)
	for _, to := range AllStatuses() {
		if _, ok := transitions[role][edge{from: from, to: to}]; ok {
			next = append(next, to)
		}
	}
	return next
}
