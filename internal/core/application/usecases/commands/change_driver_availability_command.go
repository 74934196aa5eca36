package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrChangeDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ChangeDriverAvailabilityCommand must be created via NewChangeDriverAvailabilityCommand constructor",
)

// ChangeDriverAvailabilityCommand switches a driver between available and offline.
type ChangeDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.UUID
	availability driver.Availability

	guard guard.ConstructorGuard
}

// NewChangeDriverAvailabilityCommand creates a command to switch a driver between
// available and offline. Returns an error if the driver ID is not set or the
// availability is unknown.
func NewChangeDriverAvailabilityCommand(
	driverID kernel.UUID,
	availability driver.Availability,
) (ChangeDriverAvailabilityCommand, error) {
	if err := errors.Join(driverID.Validate(), availability.Validate()); err != nil {
		return ChangeDriverAvailabilityCommand{}, err
	}

	return ChangeDriverAvailabilityCommand{
		driverID:     driverID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewChangeDriverAvailabilityCommand.
func (c ChangeDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c ChangeDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Availability returns the requested availability.
func (c ChangeDriverAvailabilityCommand) Availability() driver.Availability {
	return c.availability
}
