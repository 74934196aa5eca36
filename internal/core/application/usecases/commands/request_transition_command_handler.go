package commands

import (
	"context"
	"time"
)

// RequestTransitionCommandHandler applies one edge of the order state machine.
//
// Failures are typed and never retried here:
//   - order.ErrInvalidTransition: the edge does not exist for the actor's role
//   - order.ErrNotAuthorized: the actor is not the order's client, business or driver
//   - errs.ErrVersionConflict: the order changed since the caller read it
type RequestTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestTransitionCommandHandler creates a handler for RequestTransitionCommand.
func NewRequestTransitionCommandHandler(uowFactory OrderUoWFactory) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, checks the caller's version, applies the transition and
// writes it conditionally.
func (h RequestTransitionCommandHandler) Handle(ctx context.Context, cmd RequestTransitionCommand) error {
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

	if err = o.RequestTransition(cmd.Actor(), cmd.Target(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
