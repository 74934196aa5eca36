package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func createBusiness(t *testing.T, open bool, fee, minimum string) *catalog.Business {
	t.Helper()
	b, err := catalog.NewBusiness(kernel.NewUUID(), "Pizza Place", open, kernel.MustMoney(fee), kernel.MustMoney(minimum))
	require.NoError(t, err)
	return b
}

func createProduct(t *testing.T, businessID kernel.UUID, name, price string, available bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), businessID, name, kernel.MustMoney(price), available)
	require.NoError(t, err)
	return p
}

func createCart(t *testing.T, businessID kernel.UUID, lines map[*catalog.Product]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	for p, qty := range lines {
		require.NoError(t, c.Add(businessID, p.ID(), qty, p.Price()))
	}
	return c
}

func checkoutDetails(t *testing.T) services.CheckoutDetails {
	t.Helper()
	coords, err := kernel.NewCoordinates(52.52, 13.405)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("Main St 1", "", coords)
	require.NoError(t, err)
	return services.CheckoutDetails{
		OrderID:         kernel.NewUUID(),
		DeliveryAddress: address,
		PaymentMethod:   order.PaymentCash,
		At:              testNow,
	}
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Dana", driver.Available)
	require.NoError(t, err)
	return d
}

func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	b := createBusiness(t, true, "2.99", "0.00")
	p := createProduct(t, b.ID(), "Margherita", "7.50", true)
	c := createCart(t, b.ID(), map[*catalog.Product]int{p: 2})

	o, err := order.RestoreOrder(order.Snapshot{
		Draft: func() order.Draft {
			item, err := order.NewItem(p.ID(), p.Name(), 2, p.Price(), "")
			require.NoError(t, err)
			d := checkoutDetails(t)
			return order.Draft{
				ID:              d.OrderID,
				BusinessID:      b.ID(),
				ClientID:        c.ClientID(),
				Items:           []order.Item{item},
				DeliveryFee:     b.DeliveryFee(),
				DeliveryAddress: d.DeliveryAddress,
				PaymentMethod:   d.PaymentMethod,
				CreatedAt:       testNow,
			}
		}(),
		Status:   order.Ready,
		Subtotal: kernel.MustMoney("15.00"),
		Total:    kernel.MustMoney("17.99"),
		Version:  4,
	})
	require.NoError(t, err)
	return o
}
