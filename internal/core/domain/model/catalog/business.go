package catalog

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrBusinessIsNotConstructed is returned when using an improperly initialized Business.
	ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness constructor")
)

// Business is a seller on the marketplace. Its ordering terms (open flag,
// delivery fee and minimum order) are checked at checkout.
type Business struct {
	id           kernel.UUID
	name         string
	isOpen       bool
	deliveryFee  kernel.Money
	minimumOrder kernel.Money
	guard        guard.ConstructorGuard
}

// NewBusiness validates and builds a Business.
func NewBusiness(id kernel.UUID, name string, isOpen bool, deliveryFee, minimumOrder kernel.Money) (*Business, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("business name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Business{
		id:           id,
		name:         name,
		isOpen:       isOpen,
		deliveryFee:  deliveryFee,
		minimumOrder: minimumOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Business was built by NewBusiness.
func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

// ID returns the business's unique identifier.
func (b *Business) ID() kernel.UUID {
	return b.id
}

// Name returns the display name.
func (b *Business) Name() string {
	return b.name
}

// IsOpen reports whether the business currently accepts orders.
func (b *Business) IsOpen() bool {
	return b.isOpen
}

// DeliveryFee returns the flat fee added to every order.
func (b *Business) DeliveryFee() kernel.Money {
	return b.deliveryFee
}

// MinimumOrder returns the smallest subtotal accepted at checkout.
func (b *Business) MinimumOrder() kernel.Money {
	return b.minimumOrder
}

// MeetsMinimum reports whether subtotal reaches the minimum order amount.
func (b *Business) MeetsMinimum(subtotal kernel.Money) bool {
	return !subtotal.LessThan(b.minimumOrder)
}
