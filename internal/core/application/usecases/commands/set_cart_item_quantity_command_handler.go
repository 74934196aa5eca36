package commands

import (
	"context"
)

// SetCartItemQuantityCommandHandler edits or removes a cart line.
type SetCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewSetCartItemQuantityCommandHandler creates a handler for SetCartItemQuantityCommand.
func NewSetCartItemQuantityCommandHandler(uowFactory CartUoWFactory) SetCartItemQuantityCommandHandler {
	return SetCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle overwrites the line's quantity, removing the line at 0.
func (h SetCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartItemQuantityCommand) error {
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

	c, err := cartRepo.GetForUpdate(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = c.SetQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
