package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads a client's cart for display.
type GetCartQuery struct {
	clientID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the client's cart.
func NewGetCartQuery(clientID kernel.UUID) (GetCartQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) ClientID() kernel.UUID {
	return q.clientID
}

// CartView shows prices as they were when each line was added. Available reports
// whether checkout would currently accept the product.
type CartView struct {
	ClientID     kernel.UUID
	BusinessID   *kernel.UUID
	BusinessName string
	Lines        []CartLineView
	Subtotal     kernel.Money
}

type CartLineView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
	Available bool
}
