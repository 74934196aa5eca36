// Package cartrepo persists carts with GORM. A cart row exists only while the cart
// has lines.
package cartrepo

import (
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartDTO struct {
	ClientID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	BusinessID *uuid.UUID    `gorm:"type:uuid"`
	Lines      []CartLineDTO `gorm:"foreignKey:ClientID;references:ClientID"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type CartLineDTO struct {
	ClientID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) CartDTO {
	var businessID *uuid.UUID
	if id := c.BusinessID(); id != nil {
		raw := id.Raw()
		businessID = &raw
	}

	lines := c.Lines()
	lineDTOs := make([]CartLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, CartLineDTO{
			ClientID:  c.ClientID().Raw(),
			ProductID: line.ProductID.Raw(),
			Position:  i + 1,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.Decimal(),
		})
	}

	return CartDTO{
		ClientID:   c.ClientID().Raw(),
		BusinessID: businessID,
		Lines:      lineDTOs,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	clientID, err := kernel.UUIDFromRaw(dto.ClientID)
	if err != nil {
		return nil, err
	}

	var businessID *kernel.UUID
	if dto.BusinessID != nil {
		id, idErr := kernel.UUIDFromRaw(*dto.BusinessID)
		if idErr != nil {
			return nil, idErr
		}
		businessID = &id
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, idErr := kernel.UUIDFromRaw(lineDTO.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		unitPrice, moneyErr := kernel.NewMoney(lineDTO.UnitPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		lines = append(lines, cart.Line{ProductID: productID, Quantity: lineDTO.Quantity, UnitPrice: unitPrice})
	}

	return cart.RestoreCart(clientID, businessID, lines)
}
