package commands

import (
	"context"
)

// ChangeDriverAvailabilityCommandHandler toggles driver availability. Going
// offline keeps the orders the driver already holds.
type ChangeDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverAvailabilityCommandHandler creates a handler for ChangeDriverAvailabilityCommand.
func NewChangeDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) ChangeDriverAvailabilityCommandHandler {
	return ChangeDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the driver and applies the new availability.
func (h ChangeDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd ChangeDriverAvailabilityCommand) error {
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

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = d.SetAvailability(cmd.Availability()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
