// Package order provides the Order aggregate and the rules that move it through
// its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the priced snapshot of a purchase
//   - Item: an immutable, priced line of an order
//   - Status: the closed set of lifecycle states
//   - the transition table deciding which role may move an order between statuses
//   - ProgressOf: the role-agnostic progress projection used by tracking views
//
// Key business rules:
//   - pending -> confirmed -> preparing -> ready -> assigned -> picking_up ->
//     in_transit -> delivered, with cancelled reachable from pending and confirmed
//   - every status change goes through one table keyed by role; no role may skip
//     a step or move backwards
//   - an order has a driver exactly when its status is assigned or later
//   - total == subtotal + delivery fee, fixed at creation
//   - every persisted change bumps the version used for conditional writes
package order
