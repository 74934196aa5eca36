package cart_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	c := newCart(t)

	require.NoError(t, c.Validate())
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.BusinessID())
	assert.Equal(t, "0.00", c.Subtotal().String())

	_, err := cart.NewCart(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCart_Add(t *testing.T) {
	businessID := kernel.NewUUID()

	t.Run("first line binds the business", func(t *testing.T) {
		// Given
		c := newCart(t)
		productID := kernel.NewUUID()

		// When
		err := c.Add(businessID, productID, 2, kernel.MustMoney("7.50"))

		// Then
		require.NoError(t, err)
		require.NotNil(t, c.BusinessID())
		assert.True(t, businessID.IsEqual(*c.BusinessID()))
		assert.Equal(t, "15.00", c.Subtotal().String())
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("same product merges quantities and refreshes price", func(t *testing.T) {
		c := newCart(t)
		productID := kernel.NewUUID()
		require.NoError(t, c.Add(businessID, productID, 1, kernel.MustMoney("7.50")))

		require.NoError(t, c.Add(businessID, productID, 2, kernel.MustMoney("8.00")))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.Equal(t, "8.00", lines[0].UnitPrice.String())
	})

	t.Run("product of another business is rejected", func(t *testing.T) {
		// Given
		c := newCart(t)
		require.NoError(t, c.Add(businessID, kernel.NewUUID(), 1, kernel.MustMoney("7.50")))

		// When
		err := c.Add(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustMoney("3.00"))

		// Then
		require.ErrorIs(t, err, cart.ErrBusinessMismatch)
		assert.Len(t, c.Lines(), 1)
		assert.True(t, businessID.IsEqual(*c.BusinessID()))
	})

	t.Run("clearing allows switching business", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.Add(businessID, kernel.NewUUID(), 1, kernel.MustMoney("7.50")))
		c.Clear()

		other := kernel.NewUUID()
		require.NoError(t, c.Add(other, kernel.NewUUID(), 1, kernel.MustMoney("3.00")))
		assert.True(t, other.IsEqual(*c.BusinessID()))
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		c := newCart(t)

		err := c.Add(businessID, kernel.NewUUID(), 0, kernel.MustMoney("7.50"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.BusinessID())
	})
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	businessID := kernel.NewUUID()
	first, second := kernel.NewUUID(), kernel.NewUUID()

	setup := func(t *testing.T) *cart.Cart {
		c := newCart(t)
		require.NoError(t, c.Add(businessID, first, 1, kernel.MustMoney("4.00")))
		require.NoError(t, c.Add(businessID, second, 1, kernel.MustMoney("4.00")))
		return c
	}

	t.Run("set quantity", func(t *testing.T) {
		c := setup(t)

		require.NoError(t, c.SetQuantity(second, 3))

		assert.Equal(t, "16.00", c.Subtotal().String())
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := setup(t)

		require.NoError(t, c.SetQuantity(first, 0))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.True(t, second.IsEqual(lines[0].ProductID))
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		c := setup(t)

		require.ErrorIs(t, c.SetQuantity(kernel.NewUUID(), 2), errs.ErrObjectNotFound)
		require.ErrorIs(t, c.SetQuantity(first, -1), errs.ErrValueIsInvalid)
	})

	t.Run("removing the last line unbinds the business", func(t *testing.T) {
		c := setup(t)

		c.Remove(first)
		c.Remove(second)
		c.Remove(kernel.NewUUID())

		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.BusinessID())
	})
}

func TestRestoreCart(t *testing.T) {
	clientID, businessID := kernel.NewUUID(), kernel.NewUUID()
	line := cart.Line{ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: kernel.MustMoney("4.00")}

	t.Run("restores lines in order", func(t *testing.T) {
		c, err := cart.RestoreCart(clientID, &businessID, []cart.Line{line})

		require.NoError(t, err)
		assert.Equal(t, []cart.Line{line}, c.Lines())
		assert.True(t, clientID.IsEqual(c.ClientID()))
	})

	t.Run("lines without a business are rejected", func(t *testing.T) {
		_, err := cart.RestoreCart(clientID, nil, []cart.Line{line})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty cart ignores the business", func(t *testing.T) {
		c, err := cart.RestoreCart(clientID, &businessID, nil)

		require.NoError(t, err)
		assert.Nil(t, c.BusinessID())
	})

	t.Run("invalid line is rejected", func(t *testing.T) {
		bad := line
		bad.Quantity = 0

		_, err := cart.RestoreCart(clientID, &businessID, []cart.Line{bad})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
