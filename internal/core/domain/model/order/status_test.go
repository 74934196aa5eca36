package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep persisted values stable", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 4, int(order.Ready))
		assert.Equal(t, 5, int(order.Assigned))
		assert.Equal(t, 8, int(order.Delivered))
		assert.Equal(t, 9, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(10)} {
		t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid values print as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
		assert.Equal(t, "picking_up", order.PickingUp.String())
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	withDriver := map[order.Status]bool{
		order.Assigned:  true,
		order.PickingUp: true,
		order.InTransit: true,
		order.Delivered: true,
	}

	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			if withDriver[status] {
				require.NoError(t, status.ValidateCanHaveDriver(true))
				require.Error(t, status.ValidateCanHaveDriver(false))
			} else {
				require.NoError(t, status.ValidateCanHaveDriver(false))
				require.Error(t, status.ValidateCanHaveDriver(true))
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}
