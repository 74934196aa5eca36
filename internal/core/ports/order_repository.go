// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Every write is conditional on the version the aggregate was loaded at
// (order.PersistedVersion). On success the repository marks the aggregate as
// persisted and hands it to the unit of work so its transition events reach the
// outbox in the same transaction.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, driver and version of an existing order.
	// It fails with errs.ErrVersionConflict when the stored version is no longer
	// the one the order was loaded at.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim writes the assignment of a claimed order. The write only succeeds while
	// the stored order is still ready, unassigned and at the loaded version;
	// otherwise it fails with order.ErrAlreadyClaimed. Exactly one of any number of
	// concurrent claims for the same order succeeds.
	Claim(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ErrObjectNotFound when
	// there is no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
