package queries

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler reading straight from db.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle returns drivers sorted by name.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("drivers d").
		Select(`d.id, d.name, d.availability,
			COUNT(o.id) FILTER (WHERE o.status IN ?) AS active_orders`,
			[]string{order.Assigned.String(), order.PickingUp.String(), order.InTransit.String()}).
		Joins("LEFT JOIN orders o ON o.driver_id = d.id").
		Group("d.id").
		Order("d.name, d.id")
	if query.AvailableOnly() {
		db = db.Where("d.availability = ?", driver.Available.String())
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverView, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			availability string
			activeOrders int
		)
		if err = rows.Scan(&id, &name, &availability, &activeOrders); err != nil {
			return nil, err
		}

		view := DriverView{Name: name, ActiveOrders: activeOrders}
		if view.ID, err = kernel.UUIDFromRaw(id); err != nil {
			return nil, err
		}
		if view.Availability, err = driver.ParseAvailability(availability); err != nil {
			return nil, err
		}
		drivers = append(drivers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
