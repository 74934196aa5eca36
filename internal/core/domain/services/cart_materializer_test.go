package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMaterializer_Materialize(t *testing.T) {
	materializer := services.NewCartMaterializer(40 * time.Minute)

	t.Run("should price a pending order from current product prices", func(t *testing.T) {
		// Given
		b := createBusiness(t, true, "2.99", "10.00")
		p := createProduct(t, b.ID(), "Margherita", "7.50", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 2})
		details := checkoutDetails(t)

		// When
		o, err := materializer.Materialize(c, b, []*catalog.Product{p}, details)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "15.00", o.Subtotal().String())
		assert.Equal(t, "2.99", o.DeliveryFee().String())
		assert.Equal(t, "17.99", o.Total().String())
		assert.True(t, details.OrderID.IsEqual(o.ID()))
		assert.True(t, c.ClientID().IsEqual(o.ClientID()))
		assert.True(t, b.ID().IsEqual(o.BusinessID()))
		require.NotNil(t, o.EstimatedDelivery())
		assert.Equal(t, testNow.Add(40*time.Minute), *o.EstimatedDelivery())
		assert.False(t, c.IsEmpty(), "materializing must not clear the cart")
	})

	t.Run("should use catalog price, not the price seen when adding", func(t *testing.T) {
		b := createBusiness(t, true, "1.00", "0.00")
		oldPrice := createProduct(t, b.ID(), "Soup", "4.00", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{oldPrice: 3})
		repriced, err := catalog.NewProduct(oldPrice.ID(), b.ID(), "Soup", kernel.MustMoney("4.50"), true)
		require.NoError(t, err)

		o, err := materializer.Materialize(c, b, []*catalog.Product{repriced}, checkoutDetails(t))

		require.NoError(t, err)
		assert.Equal(t, "13.50", o.Subtotal().String())
		assert.Equal(t, "14.50", o.Total().String())
		assert.Equal(t, "4.50", o.Items()[0].UnitPrice().String())
	})

	t.Run("empty cart fails first", func(t *testing.T) {
		b := createBusiness(t, false, "2.99", "10.00")
		c := createCart(t, b.ID(), nil)

		o, err := materializer.Materialize(c, b, nil, checkoutDetails(t))

		require.ErrorIs(t, err, services.ErrEmptyCart)
		assert.Nil(t, o)
	})

	t.Run("closed business is rejected before the minimum", func(t *testing.T) {
		b := createBusiness(t, false, "2.99", "10.00")
		p := createProduct(t, b.ID(), "Margherita", "1.00", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 1})

		_, err := materializer.Materialize(c, b, []*catalog.Product{p}, checkoutDetails(t))

		require.ErrorIs(t, err, services.ErrBusinessClosed)
	})

	t.Run("subtotal of 8.00 against minimum 10.00 is rejected", func(t *testing.T) {
		// Given
		b := createBusiness(t, true, "2.99", "10.00")
		p := createProduct(t, b.ID(), "Fries", "4.00", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 2})

		// When
		o, err := materializer.Materialize(c, b, []*catalog.Product{p}, checkoutDetails(t))

		// Then
		require.ErrorIs(t, err, services.ErrMinimumNotMet)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "8.00")
	})

	t.Run("unavailable product fails the whole checkout", func(t *testing.T) {
		b := createBusiness(t, true, "2.99", "0.00")
		ok := createProduct(t, b.ID(), "Margherita", "7.50", true)
		gone := createProduct(t, b.ID(), "Calzone", "9.00", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{ok: 1, gone: 1})
		soldOut, err := catalog.NewProduct(gone.ID(), b.ID(), "Calzone", gone.Price(), false)
		require.NoError(t, err)

		_, err = materializer.Materialize(c, b, []*catalog.Product{ok, soldOut}, checkoutDetails(t))

		require.ErrorIs(t, err, services.ErrProductUnavailable)
	})

	t.Run("deleted product is unavailable", func(t *testing.T) {
		b := createBusiness(t, true, "2.99", "0.00")
		p := createProduct(t, b.ID(), "Margherita", "7.50", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 1})

		_, err := materializer.Materialize(c, b, nil, checkoutDetails(t))

		require.ErrorIs(t, err, services.ErrProductUnavailable)
	})

	t.Run("product moved to another business is unavailable", func(t *testing.T) {
		b := createBusiness(t, true, "2.99", "0.00")
		p := createProduct(t, b.ID(), "Margherita", "7.50", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 1})
		moved, err := catalog.NewProduct(p.ID(), kernel.NewUUID(), p.Name(), p.Price(), true)
		require.NoError(t, err)

		_, err = materializer.Materialize(c, b, []*catalog.Product{moved}, checkoutDetails(t))

		require.ErrorIs(t, err, services.ErrProductUnavailable)
	})

	t.Run("business must be the cart's business", func(t *testing.T) {
		b := createBusiness(t, true, "2.99", "0.00")
		p := createProduct(t, b.ID(), "Margherita", "7.50", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 1})
		other := createBusiness(t, true, "0.00", "0.00")

		_, err := materializer.Materialize(c, other, []*catalog.Product{p}, checkoutDetails(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero estimate leaves delivery time unset", func(t *testing.T) {
		b := createBusiness(t, true, "2.99", "0.00")
		p := createProduct(t, b.ID(), "Margherita", "7.50", true)
		c := createCart(t, b.ID(), map[*catalog.Product]int{p: 1})

		o, err := services.NewCartMaterializer(0).Materialize(c, b, []*catalog.Product{p}, checkoutDetails(t))

		require.NoError(t, err)
		assert.Nil(t, o.EstimatedDelivery())
	})
}
