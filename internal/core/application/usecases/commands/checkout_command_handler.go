package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
)

// CheckoutCommandHandler materializes a cart into an order.
//
// The order insert and the cart clear share one transaction: either the order
// exists and the cart is empty, or nothing changed. Precondition failures
// (services.ErrEmptyCart, ErrBusinessClosed, ErrMinimumNotMet,
// ErrProductUnavailable) roll back without writing. The cart row is locked for the
// whole transaction, so concurrent checkouts of one cart produce one order and
// the others fail with services.ErrEmptyCart.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, services.NewCartMaterializer(40*time.Minute))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrMinimumNotMet):
//	    // ask the client to add more
//	case err != nil:
//	    return err
//	}
type CheckoutCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	materializer services.CartMaterializer
}

// NewCheckoutCommandHandler creates a handler that prices orders with materializer.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	materializer services.CartMaterializer,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:   uowFactory,
		materializer: materializer,
	}
}

// Handle turns the client's cart into an order and empties the cart.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	c, err := cartRepo.GetForUpdate(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return services.ErrEmptyCart
	}

	business, err := catalogRepo.GetBusiness(ctx, *c.BusinessID())
	if err != nil {
		return err
	}

	lines := c.Lines()
	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}
	products, err := catalogRepo.FindProducts(ctx, productIDs)
	if err != nil {
		return err
	}

	o, err := h.materializer.Materialize(c, business, products, services.CheckoutDetails{
		OrderID:         cmd.OrderID(),
		DeliveryAddress: cmd.DeliveryAddress(),
		PaymentMethod:   cmd.PaymentMethod(),
		At:              time.Now(),
	})
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	c.Clear()
	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
