package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns a ready order to a driver.
//
// The final word belongs to the conditional write in OrderRepository.Claim: when
// several drivers claim the same order at once, exactly one commit succeeds and
// the others get order.ErrAlreadyClaimed. The loser is not retried.
type ClaimOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
}

// NewClaimOrderCommandHandler creates a handler for ClaimOrderCommand.
func NewClaimOrderCommandHandler(uowFactory DispatchUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the claim.
//
// Returns:
//   - driver.ErrDriverUnavailable when the driver is offline
//   - order.ErrAlreadyClaimed when another driver holds or wins the order
//   - order.ErrInvalidTransition when the order is not ready
//   - errs.ErrVersionConflict when the order changed since the caller read it
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Already-claimed wins over a version mismatch so losers learn why.
	if err = h.dispatcher.Claim(o, d, time.Now()); err != nil {
		return err
	}
	if o.PersistedVersion() != cmd.ExpectedVersion() {
		return errs.NewVersionConflictError("order", o.ID(), cmd.ExpectedVersion())
	}

	if err = orderRepo.Claim(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
