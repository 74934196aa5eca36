package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should snapshot prices and compute totals", func(t *testing.T) {
		draft := testDraft(t)

		o, err := order.NewOrder(draft)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "15.00", o.Subtotal().String())
		assert.Equal(t, "2.99", o.DeliveryFee().String())
		assert.Equal(t, "17.99", o.Total().String())
		assert.Nil(t, o.Driver())
		assert.Equal(t, int64(1), o.Version())
		assert.Equal(t, int64(0), o.PersistedVersion())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should keep items in insertion order", func(t *testing.T) {
		draft := testDraft(t)
		second, err := order.NewItem(kernel.NewUUID(), "Cola", 1, kernel.MustMoney("2.00"), "no ice")
		require.NoError(t, err)
		draft.Items = append(draft.Items, second)

		o, err := order.NewOrder(draft)

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Margherita", items[0].Name())
		assert.Equal(t, "Cola", items[1].Name())
		assert.Equal(t, "17.00", o.Subtotal().String())
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		draft := testDraft(t)
		draft.Items = nil

		_, err := order.NewOrder(draft)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing identities", func(t *testing.T) {
		draft := testDraft(t)
		draft.ClientID = kernel.UUID{}
		draft.PaymentMethod = order.PaymentUnknown

		_, err := order.NewOrder(draft)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("items returned are copies", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t))
		require.NoError(t, err)

		items := o.Items()
		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reject totals that do not add up", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			Draft:    testDraft(t),
			Status:   order.Pending,
			Subtotal: kernel.MustMoney("15.00"),
			Total:    kernel.MustMoney("18.00"),
			Version:  1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("should reject a driver on a ready order", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := order.RestoreOrder(order.Snapshot{
			Draft:    testDraft(t),
			DriverID: &driverID,
			Status:   order.Ready,
			Subtotal: kernel.MustMoney("15.00"),
			Total:    kernel.MustMoney("17.99"),
			Version:  4,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an in-transit order without a driver", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			Draft:    testDraft(t),
			Status:   order.InTransit,
			Subtotal: kernel.MustMoney("15.00"),
			Total:    kernel.MustMoney("17.99"),
			Version:  7,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should mark restored version as persisted", func(t *testing.T) {
		o, _ := restoreAt(t, order.Preparing)

		assert.Equal(t, int64(3), o.Version())
		assert.Equal(t, int64(3), o.PersistedVersion())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_RequestTransition(t *testing.T) {
	t.Run("business confirms its own pending order", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t))
		require.NoError(t, err)
		at := testNow.Add(time.Minute)

		err = o.RequestTransition(actor(t, kernel.RoleBusiness, o.BusinessID()), order.Confirmed, at)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, int64(2), o.Version())

		events := o.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, o.ID(), events[0].OrderID)
		assert.Equal(t, order.Pending, events[0].From)
		assert.Equal(t, order.Confirmed, events[0].To)
		assert.Equal(t, kernel.RoleBusiness, events[0].ActorRole)
		assert.Equal(t, int64(2), events[0].Version)
		assert.Equal(t, at, events[0].OccurredAt)
		require.NoError(t, events[0].ID.Validate())
	})

	t.Run("another business is not authorized", func(t *testing.T) {
		o, _ := restoreAt(t, order.Pending)

		err := o.RequestTransition(actor(t, kernel.RoleBusiness, kernel.NewUUID()), order.Confirmed, testNow)

		var authErr *order.NotAuthorizedError
		require.ErrorAs(t, err, &authErr)
		require.ErrorIs(t, err, order.ErrNotAuthorized)
		assert.Equal(t, "business", authErr.Relationship)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("client cancels a confirmed order", func(t *testing.T) {
		o, _ := restoreAt(t, order.Confirmed)

		err := o.RequestTransition(actor(t, kernel.RoleClient, o.ClientID()), order.Cancelled, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("client cannot cancel once preparing", func(t *testing.T) {
		o, _ := restoreAt(t, order.Preparing)

		err := o.RequestTransition(actor(t, kernel.RoleClient, o.ClientID()), order.Cancelled, testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("invalid edge is reported before ownership", func(t *testing.T) {
		o, _ := restoreAt(t, order.Pending)

		err := o.RequestTransition(actor(t, kernel.RoleBusiness, kernel.NewUUID()), order.Ready, testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("driver cannot claim through a transition", func(t *testing.T) {
		o, _ := restoreAt(t, order.Ready)

		err := o.RequestTransition(actor(t, kernel.RoleDriver, kernel.NewUUID()), order.Assigned, testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Nil(t, o.Driver())
	})

	t.Run("assigned driver walks the order to delivered", func(t *testing.T) {
		o, driverID := restoreAt(t, order.Assigned)
		driver := actor(t, kernel.RoleDriver, *driverID)

		require.NoError(t, o.RequestTransition(driver, order.PickingUp, testNow))
		require.NoError(t, o.RequestTransition(driver, order.InTransit, testNow))
		require.NoError(t, o.RequestTransition(driver, order.Delivered, testNow))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, int64(6), o.Version())
		assert.Equal(t, int64(3), o.PersistedVersion())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
		assert.Len(t, o.PendingEvents(), 3)
	})

	t.Run("other driver is not authorized", func(t *testing.T) {
		o, _ := restoreAt(t, order.PickingUp)

		err := o.RequestTransition(actor(t, kernel.RoleDriver, kernel.NewUUID()), order.InTransit, testNow)

		require.ErrorIs(t, err, order.ErrNotAuthorized)
	})

	t.Run("zero actor is rejected", func(t *testing.T) {
		o, _ := restoreAt(t, order.Pending)

		err := o.RequestTransition(kernel.Actor{}, order.Confirmed, testNow)

		assert.Equal(t, kernel.ErrActorIsNotConstructed, err)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("ready order is assigned to the driver", func(t *testing.T) {
		o, _ := restoreAt(t, order.Ready)
		driverID := kernel.NewUUID()

		require.NoError(t, o.Claim(driverID, testNow))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, driverID.IsEqual(*o.Driver()))
		assert.Equal(t, int64(4), o.Version())
		require.Len(t, o.PendingEvents(), 1)
		assert.Equal(t, kernel.RoleDriver, o.PendingEvents()[0].ActorRole)
	})

	t.Run("claimed order reports already claimed", func(t *testing.T) {
		o, _ := restoreAt(t, order.Assigned)

		err := o.Claim(kernel.NewUUID(), testNow)

		require.ErrorIs(t, err, order.ErrAlreadyClaimed)
	})

	t.Run("order not ready yet cannot be claimed", func(t *testing.T) {
		o, _ := restoreAt(t, order.Preparing)

		err := o.Claim(kernel.NewUUID(), testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Nil(t, o.Driver())
	})

	t.Run("nil driver id is rejected", func(t *testing.T) {
		o, _ := restoreAt(t, order.Ready)

		require.ErrorIs(t, o.Claim(kernel.UUID{}, testNow), errs.ErrValueIsRequired)
	})
}

func TestOrder_Release(t *testing.T) {
	t.Run("assigned driver releases before pickup", func(t *testing.T) {
		o, driverID := restoreAt(t, order.Assigned)

		require.NoError(t, o.Release(actor(t, kernel.RoleDriver, *driverID), testNow))

		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.Driver())
		require.NoError(t, o.Status().ValidateCanHaveDriver(false))
	})

	t.Run("admin may release", func(t *testing.T) {
		o, _ := restoreAt(t, order.Assigned)

		require.NoError(t, o.Release(actor(t, kernel.RoleAdmin, kernel.NewUUID()), testNow))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("other driver may not release", func(t *testing.T) {
		o, _ := restoreAt(t, order.Assigned)

		err := o.Release(actor(t, kernel.RoleDriver, kernel.NewUUID()), testNow)

		require.ErrorIs(t, err, order.ErrNotAuthorized)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("release after pickup is not permitted", func(t *testing.T) {
		o, driverID := restoreAt(t, order.PickingUp)

		err := o.Release(actor(t, kernel.RoleDriver, *driverID), testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("business may not release", func(t *testing.T) {
		o, _ := restoreAt(t, order.Assigned)

		err := o.Release(actor(t, kernel.RoleBusiness, o.BusinessID()), testNow)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_CheckVersion(t *testing.T) {
	o, _ := restoreAt(t, order.Ready)

	require.NoError(t, o.CheckVersion(3))
	err := o.CheckVersion(2)
	require.ErrorIs(t, err, errs.ErrVersionConflict)
}

func TestOrder_MarkPersisted(t *testing.T) {
	o, err := order.NewOrder(testDraft(t))
	require.NoError(t, err)

	o.MarkPersisted()
	assert.Equal(t, int64(1), o.PersistedVersion())

	o.ClearPendingEvents()
	assert.Empty(t, o.PendingEvents())
}
