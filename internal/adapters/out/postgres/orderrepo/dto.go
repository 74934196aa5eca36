// Package orderrepo persists the order aggregate with GORM. Status is stored by its
// wire name; money columns are NUMERIC and map to decimal.Decimal.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID       `gorm:"type:uuid"`
	ClientID          uuid.UUID       `gorm:"type:uuid"`
	DriverID          *uuid.UUID      `gorm:"type:uuid"`
	Status            string          `gorm:"type:text"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2)"`
	Street            string
	AddressNotes      string
	Latitude          float64
	Longitude         float64
	PaymentMethod     string `gorm:"type:text"`
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	Version           int64
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of order_items. Position keeps the checkout order of the
// lines.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     string
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   o.ID().Raw(),
			Position:  i + 1,
			ProductID: item.ProductID().Raw(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			Notes:     item.Notes(),
		})
	}

	address := o.DeliveryAddress()
	return OrderDTO{
		ID:                o.ID().Raw(),
		BusinessID:        o.BusinessID().Raw(),
		ClientID:          o.ClientID().Raw(),
		DriverID:          rawDriverID(o),
		Status:            o.Status().String(),
		Subtotal:          o.Subtotal().Decimal(),
		DeliveryFee:       o.DeliveryFee().Decimal(),
		Total:             o.Total().Decimal(),
		Street:            address.Street(),
		AddressNotes:      address.Notes(),
		Latitude:          address.Coordinates().Latitude(),
		Longitude:         address.Coordinates().Longitude(),
		PaymentMethod:     o.PaymentMethod().String(),
		CreatedAt:         o.CreatedAt(),
		EstimatedDelivery: o.EstimatedDelivery(),
		Version:           o.Version(),
		Items:             itemDTOs,
	}
}

func rawDriverID(o *order.Order) *uuid.UUID {
	id := o.Driver()
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}

// stateColumns are the only columns that change after creation.
func stateColumns(o *order.Order) map[string]any {
	return map[string]any{
		"status":    o.Status().String(),
		"driver_id": rawDriverID(o),
		"version":   o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	snapshot, err := toSnapshot(dto)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(snapshot)
}

func toSnapshot(dto OrderDTO) (order.Snapshot, error) {
	var s order.Snapshot

	ids := make([]kernel.UUID, 3)
	for i, raw := range []uuid.UUID{dto.ID, dto.BusinessID, dto.ClientID} {
		id, err := kernel.UUIDFromRaw(raw)
		if err != nil {
			return s, err
		}
		ids[i] = id
	}

	if dto.DriverID != nil {
		driverID, err := kernel.UUIDFromRaw(*dto.DriverID)
		if err != nil {
			return s, err
		}
		s.DriverID = &driverID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return s, err
	}
	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return s, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return s, err
	}
	address, err := order.NewDeliveryAddress(dto.Street, dto.AddressNotes, coordinates)
	if err != nil {
		return s, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toItem(itemDTO)
		if itemErr != nil {
			return s, itemErr
		}
		items = append(items, item)
	}

	money := make([]kernel.Money, 3)
	for i, amount := range []decimal.Decimal{dto.Subtotal, dto.DeliveryFee, dto.Total} {
		m, moneyErr := kernel.NewMoney(amount)
		if moneyErr != nil {
			return s, moneyErr
		}
		money[i] = m
	}

	s.Draft = order.Draft{
		ID:                ids[0],
		BusinessID:        ids[1],
		ClientID:          ids[2],
		Items:             items,
		DeliveryFee:       money[1],
		DeliveryAddress:   address,
		PaymentMethod:     paymentMethod,
		CreatedAt:         dto.CreatedAt,
		EstimatedDelivery: dto.EstimatedDelivery,
	}
	s.Status = status
	s.Subtotal = money[0]
	s.Total = money[2]
	s.Version = dto.Version
	return s, nil
}

func toItem(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromRaw(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, dto.Name, dto.Quantity, unitPrice, dto.Notes)
}
