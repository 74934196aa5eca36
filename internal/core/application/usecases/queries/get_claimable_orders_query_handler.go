package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler reading straight from db.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle returns at most query.Limit() claimable orders. The list is a snapshot:
// an order in it may be claimed by someone else before the caller claims it.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]ClaimableOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ClaimableOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.business_id,
			o.street,
			o.latitude,
			o.longitude,
			o.total,
			o.created_at,
			o.version,
			COALESCE(SUM(i.quantity), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ? AND o.driver_id IS NULL
		GROUP BY o.id
		ORDER BY o.created_at, o.id
		LIMIT ?
	`, order.Ready.String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, businessID      uuid.UUID
			street              string
			latitude, longitude float64
			total               decimal.Decimal
			createdAt           time.Time
			version             int64
			itemCount           int
		)
		if err = rows.Scan(&id, &businessID, &street, &latitude, &longitude, &total, &createdAt, &version, &itemCount); err != nil {
			return nil, err
		}

		view := ClaimableOrder{Street: street, ItemCount: itemCount, CreatedAt: createdAt, Version: version}
		if view.ID, err = kernel.UUIDFromRaw(id); err != nil {
			return nil, err
		}
		if view.BusinessID, err = kernel.UUIDFromRaw(businessID); err != nil {
			return nil, err
		}
		if view.Coordinates, err = kernel.NewCoordinates(latitude, longitude); err != nil {
			return nil, err
		}
		if view.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
