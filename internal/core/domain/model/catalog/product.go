package catalog

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is an item on a business's menu.
type Product struct {
	id         kernel.UUID
	businessID kernel.UUID
	name       string
	price      kernel.Money
	available  bool
	guard      guard.ConstructorGuard
}

// NewProduct validates and builds a Product.
//
// Parameters:
//   - id: the product identifier
//   - businessID: the business that sells it
//   - name: the display name; surrounding spaces are trimmed and it must not be empty
//   - price: the current unit price
//   - available: whether the product can be added to carts
//
// Returns:
//   - *Product: the constructed product
//   - error: the joined validation errors if any argument is invalid
func NewProduct(id, businessID kernel.UUID, name string, price kernel.Money, available bool) (*Product, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if err := errors.Join(id.Validate(), businessID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Product{
		id:         id,
		businessID: businessID,
		name:       name,
		price:      price,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Product was built by NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// BusinessID returns the business that sells the product.
func (p *Product) BusinessID() kernel.UUID {
	return p.businessID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsAvailable reports whether the product can be added to carts.
func (p *Product) IsAvailable() bool {
	return p.available
}

// IsOrderableFrom reports whether the product can go into an order of the given
// business right now.
func (p *Product) IsOrderableFrom(businessID kernel.UUID) bool {
	return p.available && p.businessID.IsEqual(businessID)
}
