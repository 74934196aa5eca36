package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler reading straight from db.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the cart view; a client without a stored cart gets an empty one.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	view := CartView{
		ClientID: query.ClientID(),
		Lines:    make([]CartLineView, 0),
		Subtotal: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.business_id,
			COALESCE(b.name, ''),
			l.product_id,
			COALESCE(p.name, ''),
			COALESCE(p.available AND p.business_id = c.business_id, FALSE),
			l.quantity,
			l.unit_price
		FROM carts c
		JOIN cart_lines l ON l.client_id = c.client_id
		LEFT JOIN businesses b ON b.id = c.business_id
		LEFT JOIN products p ON p.id = l.product_id
		WHERE c.client_id = ?
		ORDER BY l.position
	`, query.ClientID().Raw()).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			businessID   *uuid.UUID
			businessName string
			productID    uuid.UUID
			productName  string
			available    bool
			quantity     int
			unitPrice    decimal.Decimal
		)
		if err = rows.Scan(&businessID, &businessName, &productID, &productName, &available, &quantity, &unitPrice); err != nil {
			return CartView{}, err
		}

		if view.BusinessID == nil && businessID != nil {
			id, idErr := kernel.UUIDFromRaw(*businessID)
			if idErr != nil {
				return CartView{}, idErr
			}
			view.BusinessID = &id
			view.BusinessName = businessName
		}

		line := CartLineView{Name: productName, Quantity: quantity, Available: available}
		if line.ProductID, err = kernel.UUIDFromRaw(productID); err != nil {
			return CartView{}, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return CartView{}, err
		}
		line.LineTotal = line.UnitPrice.Times(quantity)
		view.Subtotal = view.Subtotal.Add(line.LineTotal)
		view.Lines = append(view.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return CartView{}, err
	}

	return view, nil
}
