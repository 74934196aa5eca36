package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/services"
)

// AddCartItemCommandHandler adds a product to a cart. A product of another
// business than the one already in the cart fails with cart.ErrBusinessMismatch;
// an unavailable product fails with services.ErrProductUnavailable.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for AddCartItemCommand.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the product at its current price. It fails with
// services.ErrProductUnavailable for hidden products and with cart.ErrBusinessMismatch
// when the cart already holds another business's products.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	catalogRepo := uow.CatalogRepository()
	cartRepo := uow.CartRepository()

	product, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !product.IsAvailable() {
		return fmt.Errorf("%w: %s", services.ErrProductUnavailable, product.Name())
	}

	c, err := cartRepo.GetForUpdate(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = c.Add(product.BusinessID(), product.ID(), cmd.Quantity(), product.Price()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
