package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type SetCartItemQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

type CheckoutRequest struct {
	Street        string   `json:"street"         validate:"required,max=500"`
	Notes         string   `json:"notes"          validate:"max=500"`
	Latitude      *float64 `json:"latitude"       validate:"required,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude"      validate:"required,gte=-180,lte=180"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cash card"`
}

type TransitionRequest struct {
	Target          string `json:"target"           validate:"required"`
	ExpectedVersion int64  `json:"expected_version" validate:"required,min=1"`
}

type VersionedRequest struct {
	ExpectedVersion int64 `json:"expected_version" validate:"required,min=1"`
}

type CreateDriverRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type AvailabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneof=available offline"`
}

type CreateBusinessRequest struct {
	Name         string `json:"name"          validate:"required,max=200"`
	IsOpen       bool   `json:"is_open"`
	DeliveryFee  string `json:"delivery_fee"  validate:"required,numeric"`
	MinimumOrder string `json:"minimum_order" validate:"required,numeric"`
}

type CreateProductRequest struct {
	Name      string `json:"name"      validate:"required,max=200"`
	Price     string `json:"price"     validate:"required,numeric"`
	Available bool   `json:"available"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	Available bool   `json:"available"`
}

type CartResponse struct {
	BusinessID   *string            `json:"business_id"`
	BusinessName string             `json:"business_name,omitempty"`
	Lines        []CartLineResponse `json:"lines"`
	Subtotal     string             `json:"subtotal"`
}

func newCartResponse(v queries.CartView) CartResponse {
	resp := CartResponse{
		BusinessName: v.BusinessName,
		Lines:        make([]CartLineResponse, len(v.Lines)),
		Subtotal:     v.Subtotal.String(),
	}
	if v.BusinessID != nil {
		id := v.BusinessID.String()
		resp.BusinessID = &id
	}
	for i, l := range v.Lines {
		resp.Lines[i] = CartLineResponse{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal.String(),
			Available: l.Available,
		}
	}
	return resp
}

type ClaimableOrderResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Street     string    `json:"street"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
	Version    int64     `json:"version"`
}

func newClaimableOrdersResponse(orders []queries.ClaimableOrder) []ClaimableOrderResponse {
	resp := make([]ClaimableOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = ClaimableOrderResponse{
			ID:         o.ID.String(),
			BusinessID: o.BusinessID.String(),
			Street:     o.Street,
			Latitude:   o.Coordinates.Latitude(),
			Longitude:  o.Coordinates.Longitude(),
			Total:      o.Total.String(),
			ItemCount:  o.ItemCount,
			CreatedAt:  o.CreatedAt,
			Version:    o.Version,
		}
	}
	return resp
}

type ProgressResponse struct {
	Fraction float64 `json:"fraction"`
	Step     int     `json:"step"`
}

type TrackingResponse struct {
	OrderID           string            `json:"order_id"`
	Status            string            `json:"status"`
	Progress          *ProgressResponse `json:"progress"`
	DriverID          *string           `json:"driver_id"`
	DriverName        string            `json:"driver_name,omitempty"`
	EstimatedDelivery *time.Time        `json:"estimated_delivery"`
	Total             string            `json:"total"`
	Version           int64             `json:"version"`
	NextStatuses      []string          `json:"next_statuses"`
}

func newTrackingResponse(t queries.OrderTracking) TrackingResponse {
	resp := TrackingResponse{
		OrderID:           t.OrderID.String(),
		Status:            t.Status.String(),
		DriverName:        t.DriverName,
		EstimatedDelivery: t.EstimatedDelivery,
		Total:             t.Total.String(),
		Version:           t.Version,
		NextStatuses:      statusNames(t.NextStatuses),
	}
	if t.Progress != nil {
		resp.Progress = &ProgressResponse{Fraction: t.Progress.Fraction, Step: t.Progress.Step}
	}
	if t.DriverID != nil {
		id := t.DriverID.String()
		resp.DriverID = &id
	}
	return resp
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}

type DriverResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability string `json:"availability"`
	ActiveOrders int    `json:"active_orders"`
}

func newDriversResponse(drivers []queries.DriverView) []DriverResponse {
	resp := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		resp[i] = DriverResponse{
			ID:           d.ID.String(),
			Name:         d.Name,
			Availability: d.Availability.String(),
			ActiveOrders: d.ActiveOrders,
		}
	}
	return resp
}
