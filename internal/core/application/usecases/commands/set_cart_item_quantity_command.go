package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetCartItemQuantityCommandIsNotConstructed = errors.New(
	"SetCartItemQuantityCommand must be created via NewSetCartItemQuantityCommand constructor",
)

// SetCartItemQuantityCommand changes the quantity of a cart line. Zero removes
// the line.
type SetCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewSetCartItemQuantityCommand creates a command to overwrite the quantity of a
// cart line. A quantity of 0 removes the line. Returns an error if either ID is
// not set or the quantity is negative.
func NewSetCartItemQuantityCommand(clientID, productID kernel.UUID, quantity int) (SetCartItemQuantityCommand, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if err := errors.Join(clientID.Validate(), productID.Validate(), quantityErr); err != nil {
		return SetCartItemQuantityCommand{}, err
	}

	return SetCartItemQuantityCommand{
		clientID:  clientID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewSetCartItemQuantityCommand.
func (c SetCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartItemQuantityCommandIsNotConstructed)
}

// ClientID returns the cart owner.
func (c SetCartItemQuantityCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProductID returns the line to change.
func (c SetCartItemQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new quantity; 0 removes the line.
func (c SetCartItemQuantityCommand) Quantity() int {
	return c.quantity
}
