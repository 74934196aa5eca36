package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand asks to assign a ready order to a driver.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, driverID, 4)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyClaimed) {
//	    // pick another order from the claimable list
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	driverID        kernel.UUID
	expectedVersion int64

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a driver to claim a ready order.
// Validates that both IDs are set and the expected version is at least 1.
// Returns an error if any validation fails.
func NewClaimOrderCommand(orderID, driverID kernel.UUID, expectedVersion int64) (ClaimOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		validateExpectedVersion(expectedVersion),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		orderID:         orderID,
		driverID:        driverID,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewClaimOrderCommand.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the claiming driver.
func (c ClaimOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ExpectedVersion returns the order version the driver saw in the claimable list.
func (c ClaimOrderCommand) ExpectedVersion() int64 {
	return c.expectedVersion
}
