package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the client's cart, which also lets the client start
// a cart with another business.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the client's cart.
func NewClearCartCommand(clientID kernel.UUID) (ClearCartCommand, error) {
	if err := clientID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) ClientID() kernel.UUID {
	return c.clientID
}
