package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery lists drivers with the number of orders each is working on.
type GetDriversQuery struct {
	availableOnly bool
	guard         guard.ConstructorGuard
}

// NewGetDriversQuery creates a query listing drivers, optionally only the available ones.
func NewGetDriversQuery(availableOnly bool) GetDriversQuery {
	return GetDriversQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether offline drivers are filtered out.
func (q GetDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

// DriverView is a driver with ActiveOrders counting orders assigned to it and not
// yet delivered.
type DriverView struct {
	ID           kernel.UUID
	Name         string
	Availability driver.Availability
	ActiveOrders int
}
