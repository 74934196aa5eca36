package commands

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
)

// CreateBusinessCommandHandler adds a business to the catalog.
type CreateBusinessCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateBusinessCommandHandler creates a handler for CreateBusinessCommand.
func NewCreateBusinessCommandHandler(uowFactory CatalogUoWFactory) CreateBusinessCommandHandler {
	return CreateBusinessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the business and stores it.
func (h CreateBusinessCommandHandler) Handle(ctx context.Context, cmd CreateBusinessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	business, err := catalog.NewBusiness(
		cmd.BusinessID(), cmd.Name(), cmd.IsOpen(), cmd.DeliveryFee(), cmd.MinimumOrder())
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

	if err = uow.CatalogRepository().AddBusiness(ctx, business); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
