// Package driver provides the Driver aggregate: a person who claims ready orders
// and carries them to clients.
//
// The package includes:
//   - Driver: the aggregate root holding identity, display name and availability
//   - Availability: whether the driver currently accepts new orders
//
// Key business rules:
//   - a driver must have a valid identifier and a non-empty name
//   - only available drivers may claim orders
//   - the number of active orders is not stored on the driver; it is derived from
//     the orders assigned to it
package driver
