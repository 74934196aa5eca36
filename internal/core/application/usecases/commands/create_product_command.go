package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to a business's menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	businessID kernel.UUID
	name       string
	price      kernel.Money
	available  bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product to a business's
// catalog. Returns an error if either ID is not set.
func NewCreateProductCommand(
	productID, businessID kernel.UUID,
	name string,
	price kernel.Money,
	available bool,
) (CreateProductCommand, error) {
	if err := errors.Join(productID.Validate(), businessID.Validate()); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:  productID,
		businessID: businessID,
		name:       name,
		price:      price,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewCreateProductCommand.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

func (c CreateProductCommand) Available() bool {
	return c.available
}
