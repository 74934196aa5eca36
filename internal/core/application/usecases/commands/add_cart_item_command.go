package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts quantity units of a product into the client's cart at
// the product's current price.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add quantity units of a product to
// the client's cart. Returns an error if either ID is not set or the quantity is
// less than 1.
func NewAddCartItemCommand(clientID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if err := errors.Join(clientID.Validate(), productID.Validate(), quantityErr); err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		clientID:  clientID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewAddCartItemCommand.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// ClientID returns the cart owner.
func (c AddCartItemCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}
