package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// CreateDriverCommand registers a driver. New drivers start offline.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// Validates that the driver ID is set and the name is not blank.
// Returns an error if any validation fails.
func NewCreateDriverCommand(driverID kernel.UUID, name string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate checks that the command was built by NewCreateDriverCommand.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}
