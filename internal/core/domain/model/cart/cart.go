package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrBusinessMismatch is returned when adding a product of a business other than
	// the one the cart already holds.
	ErrBusinessMismatch = errors.New("cart holds products of another business")
	// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Line is one product in a cart with the price seen when it was added.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// LineTotal is quantity x add-time unit price.
func (l Line) LineTotal() kernel.Money {
	return l.UnitPrice.Times(l.Quantity)
}

func (l Line) validate() error {
	if err := l.ProductID.Validate(); err != nil {
		return err
	}
	if l.Quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", l.Quantity))
	}
	return nil
}

// Cart is the aggregate root of a client's pending selection.
type Cart struct {
	clientID   kernel.UUID
	businessID *kernel.UUID
	lines      []Line
	guard      guard.ConstructorGuard
}

// NewCart returns an empty cart for clientID.
func NewCart(clientID kernel.UUID) (*Cart, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

// RestoreCart rebuilds a cart from persistence. A cart with lines must name its
// business.
func RestoreCart(clientID kernel.UUID, businessID *kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(clientID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return c, nil
	}
	if businessID == nil {
		return nil, errs.NewValueIsRequiredError("cart business")
	}
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	for i, line := range lines {
		if err := line.validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	id := *businessID
	c.businessID = &id
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
	return c, nil
}

// Validate checks that the Cart was built by NewCart or RestoreCart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ClientID returns the client who owns the cart.
func (c *Cart) ClientID() kernel.UUID {
	return c.clientID
}

// BusinessID returns the business the cart is bound to, or nil when it is empty.
func (c *Cart) BusinessID() *kernel.UUID {
	if c.businessID == nil {
		return nil
	}
	id := *c.businessID
	return &id
}

// Lines returns the lines in the order they were first added.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal sums quantity x add-time price over all lines.
func (c *Cart) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Add puts quantity units of a product into the cart. Adding a product that is
// already there increases its quantity and refreshes the unit price.
func (c *Cart) Add(businessID, productID kernel.UUID, quantity int, unitPrice kernel.Money) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	line := Line{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}
	if err := line.validate(); err != nil {
		return err
	}
	if c.businessID != nil && !c.businessID.IsEqual(businessID) {
		return fmt.Errorf("%w: cart is bound to business %s", ErrBusinessMismatch, c.businessID)
	}

	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity += quantity
		c.lines[i].UnitPrice = unitPrice
		return nil
	}

	c.businessID = &businessID
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity replaces the quantity of a line. A quantity of zero removes it.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i := c.indexOf(productID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", productID)
	}
	if quantity == 0 {
		c.removeAt(i)
		return nil
	}
	c.lines[i].Quantity = quantity
	return nil
}

// Remove drops a line; removing a product not in the cart is a no-op.
func (c *Cart) Remove(productID kernel.UUID) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear empties the cart and unbinds it from its business.
func (c *Cart) Clear() {
	c.lines = nil
	c.businessID = nil
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	if len(c.lines) == 0 {
		c.Clear()
	}
}
