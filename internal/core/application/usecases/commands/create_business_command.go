package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateBusinessCommandIsNotConstructed = errors.New(
	"CreateBusinessCommand must be created via NewCreateBusinessCommand constructor",
)

// CreateBusinessCommand registers a seller with its ordering terms.
type CreateBusinessCommand struct { //nolint:recvcheck //using for validation
	businessID   kernel.UUID
	name         string
	isOpen       bool
	deliveryFee  kernel.Money
	minimumOrder kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateBusinessCommand creates a command to register a business. Only the
// ID is checked here; the name and money amounts are validated by
// catalog.NewBusiness when the command is handled.
func NewCreateBusinessCommand(
	businessID kernel.UUID,
	name string,
	isOpen bool,
	deliveryFee, minimumOrder kernel.Money,
) (CreateBusinessCommand, error) {
	if err := businessID.Validate(); err != nil {
		return CreateBusinessCommand{}, err
	}

	return CreateBusinessCommand{
		businessID:   businessID,
		name:         name,
		isOpen:       isOpen,
		deliveryFee:  deliveryFee,
		minimumOrder: minimumOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the command was built by NewCreateBusinessCommand.
func (c CreateBusinessCommand) Validate() error {
	return c.guard.Validate(ErrCreateBusinessCommandIsNotConstructed)
}

func (c CreateBusinessCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c CreateBusinessCommand) Name() string {
	return c.name
}

func (c CreateBusinessCommand) IsOpen() bool {
	return c.isOpen
}

func (c CreateBusinessCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c CreateBusinessCommand) MinimumOrder() kernel.Money {
	return c.minimumOrder
}
