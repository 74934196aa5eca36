package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced line of an order. The unit price is copied from the product at
// checkout and never re-read from the catalog afterwards.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
	notes     string
	guard     guard.ConstructorGuard
}

// NewItem validates a line: product ID set, name non-blank, quantity >= 1.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice kernel.Money, notes string) (Item, error) {
	item := Item{
		unitPrice: unitPrice,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog product the item was taken from.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Notes returns the client's free-text instructions for the item.
func (i Item) Notes() string {
	return i.notes
}

// LineTotal is quantity * unit price.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
