package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand asks to move an order to target on behalf of actor.
// expectedVersion is the version the caller last saw; a stale one fails with
// errs.ErrVersionConflict.
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	expectedVersion int64
	actor           kernel.Actor
	target          order.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a command to move an order to target on behalf of actor.
// Validates that the order ID is set, the expected version is at least 1 and
// both actor and target are constructed. Returns an error if any validation fails.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	expectedVersion int64,
	actor kernel.Actor,
	target order.Status,
) (RequestTransitionCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		validateExpectedVersion(expectedVersion),
		actor.Validate(),
		target.Validate(),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return RequestTransitionCommand{
		orderID:         orderID,
		expectedVersion: expectedVersion,
		actor:           actor,
		target:          target,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewRequestTransitionCommand.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpectedVersion returns the order version the caller last saw.
func (c RequestTransitionCommand) ExpectedVersion() int64 {
	return c.expectedVersion
}

// Actor returns who requests the transition.
func (c RequestTransitionCommand) Actor() kernel.Actor {
	return c.actor
}

// Target returns the requested status.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

func validateExpectedVersion(v int64) error {
	if v < 1 {
		return errs.NewValueIsInvalidErrorWithCause("expected version", fmt.Errorf("%d is less than 1", v))
	}
	return nil
}
