package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition_Table(t *testing.T) {
	allowed := map[kernel.Role][][2]order.Status{
		kernel.RoleBusiness: {
			{order.Pending, order.Confirmed},
			{order.Pending, order.Cancelled},
			{order.Confirmed, order.Preparing},
			{order.Preparing, order.Ready},
		},
		kernel.RoleDriver: {
			{order.Assigned, order.PickingUp},
			{order.PickingUp, order.InTransit},
			{order.InTransit, order.Delivered},
		},
		kernel.RoleClient: {
			{order.Pending, order.Cancelled},
			{order.Confirmed, order.Cancelled},
		},
	}

	roles := []kernel.Role{kernel.RoleClient, kernel.RoleBusiness, kernel.RoleDriver, kernel.RoleAdmin}
	for _, role := range roles {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				want := false
				for _, e := range allowed[role] {
					if e[0] == from && e[1] == to {
						want = true
					}
				}

				err := order.ValidateTransition(role, from, to)
				if want {
					assert.NoError(t, err, "%s %s->%s", role, from, to)
				} else {
					assert.ErrorIs(t, err, order.ErrInvalidTransition, "%s %s->%s", role, from, to)
				}
			}
		}
	}
}

func TestValidateTransition_ClaimEdgeIsNotReachable(t *testing.T) {
	for _, role := range []kernel.Role{kernel.RoleClient, kernel.RoleBusiness, kernel.RoleDriver, kernel.RoleAdmin} {
		require.ErrorIs(t, order.ValidateTransition(role, order.Ready, order.Assigned), order.ErrInvalidTransition)
	}
}

func TestValidateTransition_NoSkipsOrBackwardMoves(t *testing.T) {
	t.Run("pending straight to ready fails", func(t *testing.T) {
		err := order.ValidateTransition(kernel.RoleBusiness, order.Pending, order.Ready)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Pending, transitionErr.From)
		assert.Equal(t, order.Ready, transitionErr.To)
		assert.Equal(t, "invalid transition: business cannot move an order from pending to ready", err.Error())
	})

	t.Run("no cancellation once a driver is involved", func(t *testing.T) {
		for _, from := range []order.Status{order.Assigned, order.PickingUp, order.InTransit, order.Delivered} {
			for _, role := range []kernel.Role{kernel.RoleClient, kernel.RoleBusiness, kernel.RoleDriver} {
				require.ErrorIs(t, order.ValidateTransition(role, from, order.Cancelled), order.ErrInvalidTransition)
			}
		}
	})

	t.Run("no edge leaves a terminal status", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleClient, kernel.RoleBusiness, kernel.RoleDriver} {
			assert.Empty(t, order.NextStatuses(role, order.Delivered))
			assert.Empty(t, order.NextStatuses(role, order.Cancelled))
		}
	})
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []order.Status{order.Confirmed, order.Cancelled}, order.NextStatuses(kernel.RoleBusiness, order.Pending))
	assert.Equal(t, []order.Status{order.Cancelled}, order.NextStatuses(kernel.RoleClient, order.Confirmed))
	assert.Equal(t, []order.Status{order.InTransit}, order.NextStatuses(kernel.RoleDriver, order.PickingUp))
	assert.Empty(t, order.NextStatuses(kernel.RoleDriver, order.Ready))
}
