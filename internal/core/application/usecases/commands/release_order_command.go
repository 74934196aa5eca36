package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrReleaseOrderCommandIsNotConstructed = errors.New(
	"ReleaseOrderCommand must be created via NewReleaseOrderCommand constructor",
)

// ReleaseOrderCommand hands an assigned order back to the claimable set.
type ReleaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	expectedVersion int64
	actor           kernel.Actor

	guard guard.ConstructorGuard
}

// NewReleaseOrderCommand creates a command to hand a claimed order back to the pool.
// Validates that the order ID is set, the expected version is at least 1 and
// the actor is constructed. Returns an error if any validation fails.
func NewReleaseOrderCommand(orderID kernel.UUID, expectedVersion int64, actor kernel.Actor) (ReleaseOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		validateExpectedVersion(expectedVersion),
		actor.Validate(),
	); err != nil {
		return ReleaseOrderCommand{}, err
	}

	return ReleaseOrderCommand{
		orderID:         orderID,
		expectedVersion: expectedVersion,
		actor:           actor,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewReleaseOrderCommand.
func (c ReleaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c ReleaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpectedVersion returns the order version the caller last saw.
func (c ReleaseOrderCommand) ExpectedVersion() int64 {
	return c.expectedVersion
}

// Actor returns the driver or admin releasing the order.
func (c ReleaseOrderCommand) Actor() kernel.Actor {
	return c.actor
}
