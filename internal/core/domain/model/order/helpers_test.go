package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testDraft(t *testing.T) order.Draft {
	t.Helper()

	coords, err := kernel.NewCoordinates(52.52, 13.405)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("Main St 1", "ring twice", coords)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, kernel.MustMoney("7.50"), "")
	require.NoError(t, err)

	return order.Draft{
		ID:              kernel.NewUUID(),
		BusinessID:      kernel.NewUUID(),
		ClientID:        kernel.NewUUID(),
		Items:           []order.Item{item},
		DeliveryFee:     kernel.MustMoney("2.99"),
		DeliveryAddress: address,
		PaymentMethod:   order.PaymentCard,
		CreatedAt:       testNow,
	}
}

// restoreAt rebuilds an order in the given status, assigning a driver when the
// status requires one.
func restoreAt(t *testing.T, status order.Status) (*order.Order, *kernel.UUID) {
	t.Helper()

	var driverID *kernel.UUID
	if status.HasDriver() {
		id := kernel.NewUUID()
		driverID = &id
	}

	o, err := order.RestoreOrder(order.Snapshot{
		Draft:    testDraft(t),
		DriverID: driverID,
		Status:   status,
		Subtotal: kernel.MustMoney("15.00"),
		Total:    kernel.MustMoney("17.99"),
		Version:  3,
	})
	require.NoError(t, err)
	return o, driverID
}

func actor(t *testing.T, role kernel.Role, id kernel.UUID) kernel.Actor {
	t.Helper()

	a, err := kernel.NewActor(role, id)
	require.NoError(t, err)
	return a
}
