package services

import (
	"time"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDispatcher is a domain service deciding whether a driver may take or hand
// back an order.
//
// Business rules:
//   - Only available drivers may claim
//   - Only ready orders without a driver are claimable
//   - Releasing is allowed for the assigned driver or an admin, before pickup
//
// The in-memory checks here mirror the conditional write the repository performs.
// Two drivers passing Claim on their own copies of the same order is expected; the
// store decides the winner.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.Claim(o, d, now); err != nil {
//	    return err
//	}
//	err = orderRepo.Claim(ctx, o)
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Claim assigns o to d.
//
// Returns:
//   - driver.ErrDriverUnavailable when d is offline
//   - order.ErrAlreadyClaimed when o already has a driver
//   - order.ErrInvalidTransition when o is not ready yet
func (OrderDispatcher) Claim(o *order.Order, d *driver.Driver, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.CanClaim(); err != nil {
		return err
	}
	return o.Claim(d.ID(), at)
}

// Release puts o back into the claimable set on behalf of actor.
func (OrderDispatcher) Release(o *order.Order, actor kernel.Actor, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Release(actor, at)
}
