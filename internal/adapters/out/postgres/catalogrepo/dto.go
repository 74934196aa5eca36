// Package catalogrepo persists businesses and their products with GORM.
package catalogrepo

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BusinessDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	IsOpen       bool
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinimumOrder decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (BusinessDTO) TableName() string {
	return "businesses"
}

type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID uuid.UUID `gorm:"type:uuid"`
	Name       string
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Available  bool
}

func (ProductDTO) TableName() string {
	return "products"
}

func businessFromDomain(b *catalog.Business) BusinessDTO {
	return BusinessDTO{
		ID:           b.ID().Raw(),
		Name:         b.Name(),
		IsOpen:       b.IsOpen(),
		DeliveryFee:  b.DeliveryFee().Decimal(),
		MinimumOrder: b.MinimumOrder().Decimal(),
	}
}

func businessToDomain(dto BusinessDTO) (*catalog.Business, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	minimum, err := kernel.NewMoney(dto.MinimumOrder)
	if err != nil {
		return nil, err
	}
	return catalog.NewBusiness(id, dto.Name, dto.IsOpen, fee, minimum)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Raw(),
		BusinessID: p.BusinessID().Raw(),
		Name:       p.Name(),
		Price:      p.Price().Decimal(),
		Available:  p.IsAvailable(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromRaw(dto.BusinessID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, businessID, dto.Name, price, dto.Available)
}
