package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Checkout precondition errors. Each leaves the cart untouched.
var (
	// ErrEmptyCart is returned when checking out a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBusinessClosed is returned when the cart's business is not taking orders.
	ErrBusinessClosed = errors.New("business is closed")
	// ErrMinimumNotMet is returned when the cart subtotal is below the business minimum.
	ErrMinimumNotMet = errors.New("minimum order amount not met")
	// ErrProductUnavailable is returned when a cart line refers to a product that is
	// gone, unavailable or sold by another business.
	ErrProductUnavailable = errors.New("product unavailable")
)

// CheckoutDetails is what the client provides at checkout besides the cart.
type CheckoutDetails struct {
	OrderID         kernel.UUID
	DeliveryAddress order.DeliveryAddress
	PaymentMethod   order.PaymentMethod
	At              time.Time
}

// CartMaterializer converts a cart into a pending order.
//
// Checks run in a fixed order and the first failing one is reported:
//  1. the cart has lines (ErrEmptyCart)
//  2. the business is open (ErrBusinessClosed)
//  3. the add-time subtotal reaches the minimum order (ErrMinimumNotMet)
//  4. every product still exists, is available and belongs to the business
//     (ErrProductUnavailable)
//
// The order is then priced from the products as they are now, not from the
// prices stored in the cart.
type CartMaterializer struct {
	deliveryEstimate time.Duration
}

// NewCartMaterializer creates a materializer that sets the estimated delivery
// to creation time plus deliveryEstimate. Zero leaves it unset.
func NewCartMaterializer(deliveryEstimate time.Duration) CartMaterializer {
	return CartMaterializer{deliveryEstimate: deliveryEstimate}
}

// Materialize builds the order for c. products must hold the catalog entries for
// the cart lines as currently stored; entries missing from it count as removed.
func (m CartMaterializer) Materialize(
	c *cart.Cart,
	business *catalog.Business,
	products []*catalog.Product,
	details CheckoutDetails,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := business.Validate(); err != nil {
		return nil, err
	}
	if !c.BusinessID().IsEqual(business.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("business", fmt.Errorf(
			"cart is bound to %s, got %s", c.BusinessID(), business.ID()))
	}
	if !business.IsOpen() {
		return nil, fmt.Errorf("%w: %s", ErrBusinessClosed, business.Name())
	}

	if subtotal := c.Subtotal(); !business.MeetsMinimum(subtotal) {
		return nil, fmt.Errorf("%w: subtotal %s is below %s", ErrMinimumNotMet, subtotal, business.MinimumOrder())
	}

	byID := make(map[kernel.UUID]*catalog.Product, len(products))
	for _, p := range products {
		if p.Validate() == nil {
			byID[p.ID()] = p
		}
	}

	items := make([]order.Item, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		p, ok := byID[line.ProductID]
		if !ok || !p.IsOrderableFrom(business.ID()) {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}

		item, err := order.NewItem(p.ID(), p.Name(), line.Quantity, p.Price(), "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	draft := order.Draft{
		ID:              details.OrderID,
		BusinessID:      business.ID(),
		ClientID:        c.ClientID(),
		Items:           items,
		DeliveryFee:     business.DeliveryFee(),
		DeliveryAddress: details.DeliveryAddress,
		PaymentMethod:   details.PaymentMethod,
		CreatedAt:       details.At,
	}
	if m.deliveryEstimate > 0 {
		eta := details.At.Add(m.deliveryEstimate)
		draft.EstimatedDelivery = &eta
	}

	return order.NewOrder(draft)
}
