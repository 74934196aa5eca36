package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft carries what checkout knows about a new order.
type Draft struct {
	ID                kernel.UUID
	BusinessID        kernel.UUID
	ClientID          kernel.UUID
	Items             []Item
	DeliveryFee       kernel.Money
	DeliveryAddress   DeliveryAddress
	PaymentMethod     PaymentMethod
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
}

// Snapshot is the full persisted state of an order, used by repositories to rebuild
// the aggregate.
type Snapshot struct {
	Draft
	DriverID *kernel.UUID
	Status   Status
	Subtotal kernel.Money
	Total    kernel.Money
	Version  int64
}

// Order is the aggregate root of a purchase, from checkout to delivery or
// cancellation.
//
// Order follows these invariants:
//   - it has at least one item and every item is valid
//   - total == subtotal + delivery fee, computed once at creation
//   - it has a driver exactly when the status is assigned, picking_up, in_transit
//     or delivered
//   - status only changes through RequestTransition, Claim and Release, each of
//     which bumps the version by one and records a TransitionEvent
type Order struct {
	id                kernel.UUID
	businessID        kernel.UUID
	clientID          kernel.UUID
	driverID          *kernel.UUID
	status            Status
	items             []Item
	subtotal          kernel.Money
	deliveryFee       kernel.Money
	total             kernel.Money
	deliveryAddress   DeliveryAddress
	paymentMethod     PaymentMethod
	createdAt         time.Time
	estimatedDelivery *time.Time

	// version is the current version; persistedVersion is the one the store holds
	// and is the precondition of the next conditional write.
	version          int64
	persistedVersion int64

	events []TransitionEvent

	guard guard.ConstructorGuard
}

// NewOrder builds a pending order at version 1. Subtotal is the sum of the item
// line totals and total adds the delivery fee.
//
// Example:
//
//	o, err := order.NewOrder(order.Draft{
//	    ID:              kernel.NewUUID(),
//	    BusinessID:      business.ID(),
//	    ClientID:        clientID,
//	    Items:           items,
//	    DeliveryFee:     business.DeliveryFee(),
//	    DeliveryAddress: address,
//	    PaymentMethod:   order.PaymentCard,
//	    CreatedAt:       now,
//	})
func NewOrder(d Draft) (*Order, error) {
	o := &Order{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := o.setDraft(d); err != nil {
		return nil, err
	}

	o.subtotal = kernel.ZeroMoney()
	for _, item := range o.items {
		o.subtotal = o.subtotal.Add(item.LineTotal())
	}
	o.total = o.subtotal.Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. Stored totals are checked, not
// recomputed, so prices stay as snapshotted.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := o.setDraft(s.Draft); err != nil {
		return nil, err
	}

	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	o.status = s.Status

	if s.DriverID != nil {
		if err := s.DriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *s.DriverID
		o.driverID = &driverID
	}
	if err := o.status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return nil, err
	}

	if !s.Subtotal.Add(o.deliveryFee).IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf(
			"%s is not subtotal %s plus delivery fee %s", s.Total, s.Subtotal, o.deliveryFee))
	}
	o.subtotal = s.Subtotal
	o.total = s.Total

	if s.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is less than 1", s.Version))
	}
	o.version = s.Version
	o.persistedVersion = s.Version

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BusinessID returns the business that fulfils the order.
func (o *Order) BusinessID() kernel.UUID {
	return o.businessID
}

// ClientID returns the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Driver returns the assigned driver, or nil before the order is claimed.
func (o *Order) Driver() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the lines in presentation order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of quantity x unit price over all items.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the business's fee captured at checkout.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns the subtotal plus the delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns where the order is delivered.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// PaymentMethod returns how the client pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDelivery returns the promised delivery time, or nil when none was set.
func (o *Order) EstimatedDelivery() *time.Time {
	if o.estimatedDelivery == nil {
		return nil
	}
	eta := *o.estimatedDelivery
	return &eta
}

// Version is the version after all in-memory changes.
func (o *Order) Version() int64 {
	return o.version
}

// PersistedVersion is the version the store is expected to hold; conditional
// writes use it as their precondition. It is 0 for an order never stored.
func (o *Order) PersistedVersion() int64 {
	return o.persistedVersion
}

// MarkPersisted is called by repositories after a successful write.
func (o *Order) MarkPersisted() {
	o.persistedVersion = o.version
}

// CheckVersion fails with a version conflict when the caller acted on a stale read.
func (o *Order) CheckVersion(expected int64) error {
	if o.version != expected {
		return errs.NewVersionConflictError("order", o.id, expected)
	}
	return nil
}

// PendingEvents returns the transition events not yet handed to the outbox.
func (o *Order) PendingEvents() []TransitionEvent {
	events := make([]TransitionEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearPendingEvents drops the recorded events once they are stored.
func (o *Order) ClearPendingEvents() {
	o.events = nil
}

// RequestTransition moves the order along an edge of the transition table.
//
// It fails with ErrInvalidTransition when the edge is not allowed for the actor's
// role and with ErrNotAuthorized when the actor is not the order's client, business
// or driver as the role requires. ready -> assigned is never reachable here; use
// Claim.
func (o *Order) RequestTransition(actor kernel.Actor, target Status, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := ValidateTransition(actor.Role(), o.status, target); err != nil {
		return err
	}
	if err := o.authorize(actor); err != nil {
		return err
	}

	o.apply(actor, target, at)
	return nil
}

// Claim assigns a ready, unassigned order to driverID. A claim against an order
// that already has a driver fails with ErrAlreadyClaimed.
func (o *Order) Claim(driverID kernel.UUID, at time.Time) error {
	actor, err := kernel.NewActor(kernel.RoleDriver, driverID)
	if err != nil {
		return err
	}

	if o.driverID != nil {
		return fmt.Errorf("%w: order %s", ErrAlreadyClaimed, o.id)
	}
	if o.status != Ready {
		return NewInvalidTransitionError(kernel.RoleDriver, o.status, Assigned)
	}

	o.driverID = &driverID
	o.apply(actor, Assigned, at)
	return nil
}

// Release hands an assigned order back to the claimable set. Only the assigned
// driver or an admin may release, and only before pickup starts.
func (o *Order) Release(actor kernel.Actor, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if o.status != Assigned {
		return NewInvalidTransitionError(actor.Role(), o.status, Ready)
	}

	switch actor.Role() { //nolint:exhaustive // other roles are rejected below
	case kernel.RoleAdmin:
	case kernel.RoleDriver:
		if !actor.ID().IsEqual(*o.driverID) {
			return NewNotAuthorizedError(actor, "driver")
		}
	default:
		return NewInvalidTransitionError(actor.Role(), o.status, Ready)
	}

	o.driverID = nil
	o.apply(actor, Ready, at)
	return nil
}

func (o *Order) authorize(actor kernel.Actor) error {
	switch actor.Role() { //nolint:exhaustive // the transition table has no other roles
	case kernel.RoleClient:
		if !actor.ID().IsEqual(o.clientID) {
			return NewNotAuthorizedError(actor, "client")
		}
	case kernel.RoleBusiness:
		if !actor.ID().IsEqual(o.businessID) {
			return NewNotAuthorizedError(actor, "business")
		}
	case kernel.RoleDriver:
		if o.driverID == nil || !actor.ID().IsEqual(*o.driverID) {
			return NewNotAuthorizedError(actor, "driver")
		}
	default:
		return NewNotAuthorizedError(actor, "party")
	}
	return nil
}

func (o *Order) apply(actor kernel.Actor, to Status, at time.Time) {
	from := o.status
	o.status = to
	o.version++
	o.events = append(o.events, TransitionEvent{
		ID:         kernel.NewUUID(),
		OrderID:    o.id,
		From:       from,
		To:         to,
		ActorRole:  actor.Role(),
		ActorID:    actor.ID(),
		Version:    o.version,
		OccurredAt: at.UTC(),
	})
}

func (o *Order) setDraft(d Draft) error {
	if err := errors.Join(
		d.ID.Validate(),
		d.BusinessID.Validate(),
		d.ClientID.Validate(),
		d.DeliveryAddress.Validate(),
		d.PaymentMethod.Validate(),
		o.setItems(d.Items),
	); err != nil {
		return err
	}
	if d.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	o.id = d.ID
	o.businessID = d.BusinessID
	o.clientID = d.ClientID
	o.deliveryFee = d.DeliveryFee
	o.deliveryAddress = d.DeliveryAddress
	o.paymentMethod = d.PaymentMethod
	o.createdAt = d.CreatedAt.UTC()
	if d.EstimatedDelivery != nil {
		eta := d.EstimatedDelivery.UTC()
		o.estimatedDelivery = &eta
	}
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
