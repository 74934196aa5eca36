package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery reads the tracking view of one order for one of its
// parties.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor
	guard   guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for the progress view of an order as
// seen by actor. Returns an error if the order ID is not set or the actor is not
// constructed.
func NewGetOrderTrackingQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderTrackingQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order to track.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns who is asking; admins and parties to the order may see it.
func (q GetOrderTrackingQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderTracking is what the client, business and driver screens render. Progress
// is the same for all of them; it is nil for a cancelled order.
type OrderTracking struct {
	OrderID           kernel.UUID
	Status            order.Status
	Progress          *order.Progress
	DriverID          *kernel.UUID
	DriverName        string
	EstimatedDelivery *time.Time
	Total             kernel.Money
	Version           int64
	// NextStatuses are the transitions the asking actor's role may request now.
	NextStatuses []order.Status
}
