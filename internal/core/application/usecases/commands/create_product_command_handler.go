package commands

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler adds a product to an existing business.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for CreateProductCommand.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the product. The owning business must exist.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.BusinessID(), cmd.Name(), cmd.Price(), cmd.Available())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	if _, err = catalogRepo.GetBusiness(ctx, cmd.BusinessID()); err != nil {
		return err
	}

	if err = catalogRepo.AddProduct(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
