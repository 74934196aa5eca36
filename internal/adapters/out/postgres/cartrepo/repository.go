package cartrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a repository bound to db, usually a transaction.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetForUpdate returns the client's cart, or an empty one when nothing is stored.
// The cart row is locked FOR UPDATE; the lines follow it in the same transaction.
func (r *GormCartRepository) GetForUpdate(ctx context.Context, clientID kernel.UUID) (*cart.Cart, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "client_id = ?", clientID.Raw()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.NewCart(clientID)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Save replaces the stored cart with c. An empty cart removes the row.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	db := r.db.WithContext(ctx)

	if err := db.Where("client_id = ?", dto.ClientID).Delete(&CartDTO{}).Error; err != nil {
		return err
	}
	if c.IsEmpty() {
		return nil
	}

	if err := db.Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "cart", c.ClientID())
	}
	return nil
}
