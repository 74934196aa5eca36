// Package services provides domain services that orchestrate business operations
// across several aggregates of the marketplace.
//
// The package includes:
//   - CartMaterializer: turns a client's cart into a pending order
//   - OrderDispatcher: checks a driver against an order before a claim
//
// Domain services hold no state and never touch storage; application handlers
// load the aggregates, call the service and persist the result.
package services
