package queries

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler reading straight from db.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

type trackingRow struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	ClientID          uuid.UUID
	Status            string
	DriverID          *uuid.UUID
	DriverName        *string
	EstimatedDelivery *time.Time
	Total             decimal.Decimal
	Version           int64
}

// Handle fails with errs.ErrObjectNotFound for an unknown order and with
// order.ErrNotAuthorized when the actor is not the order's client, business or
// driver (admins see every order).
func (h GetOrderTrackingQueryHandler) Handle(ctx context.Context, query GetOrderTrackingQuery) (OrderTracking, error) {
	if err := query.Validate(); err != nil {
		return OrderTracking{}, err
	}

	var row trackingRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.business_id,
			o.client_id,
			o.status,
			o.driver_id,
			d.name AS driver_name,
			o.estimated_delivery,
			o.total,
			o.version
		FROM orders o
		LEFT JOIN drivers d ON d.id = o.driver_id
		WHERE o.id = ?
	`, query.OrderID().Raw()).Scan(&row)
	if result.Error != nil {
		return OrderTracking{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderTracking{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err := authorizeViewer(query.Actor(), row); err != nil {
		return OrderTracking{}, err
	}

	return toTracking(query.Actor(), row)
}

func authorizeViewer(actor kernel.Actor, row trackingRow) error {
	id := actor.ID().Raw()
	switch actor.Role() { //nolint:exhaustive // remaining roles are rejected below
	case kernel.RoleAdmin:
		return nil
	case kernel.RoleClient:
		if id == row.ClientID {
			return nil
		}
	case kernel.RoleBusiness:
		if id == row.BusinessID {
			return nil
		}
	case kernel.RoleDriver:
		if row.DriverID != nil && id == *row.DriverID {
			return nil
		}
	}
	return order.NewNotAuthorizedError(actor, "party")
}

func toTracking(actor kernel.Actor, row trackingRow) (OrderTracking, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderTracking{}, err
	}

	view := OrderTracking{
		Status:            status,
		EstimatedDelivery: row.EstimatedDelivery,
		Version:           row.Version,
		NextStatuses:      order.NextStatuses(actor.Role(), status),
	}
	if view.OrderID, err = kernel.UUIDFromRaw(row.ID); err != nil {
		return OrderTracking{}, err
	}
	if view.Total, err = kernel.NewMoney(row.Total); err != nil {
		return OrderTracking{}, err
	}

	progress, err := order.ProgressOf(status)
	switch {
	case err == nil:
		view.Progress = &progress
	case !errors.Is(err, order.ErrNoProgress):
		return OrderTracking{}, err
	}

	if row.DriverID != nil {
		driverID, idErr := kernel.UUIDFromRaw(*row.DriverID)
		if idErr != nil {
			return OrderTracking{}, idErr
		}
		view.DriverID = &driverID
	}
	if row.DriverName != nil {
		view.DriverName = *row.DriverName
	}

	return view, nil
}
