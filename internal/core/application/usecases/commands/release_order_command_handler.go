package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// ReleaseOrderCommandHandler clears the driver of an assigned order and moves it
// back to ready. Only the assigned driver or an admin may release, and only
// before pickup.
type ReleaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
}

// NewReleaseOrderCommandHandler creates a handler for ReleaseOrderCommand.
func NewReleaseOrderCommandHandler(uowFactory OrderUoWFactory) ReleaseOrderCommandHandler {
	return ReleaseOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle returns the order to the ready pool when the version still matches.
func (h ReleaseOrderCommandHandler) Handle(ctx context.Context, cmd ReleaseOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.CheckVersion(cmd.ExpectedVersion()); err != nil {
		return err
	}

	if err = h.dispatcher.Release(o, cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
