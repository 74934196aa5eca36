package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository stores one cart per client.
type CartRepository interface {
	// GetForUpdate returns the client's cart, or an empty one when nothing is
	// stored. A stored cart stays locked until the transaction ends, so a
	// concurrent checkout of the same cart waits and then sees it cleared.
	GetForUpdate(ctx context.Context, clientID kernel.UUID) (*cart.Cart, error)

	// Save replaces the stored lines of the cart. Saving an empty cart removes it.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
