package http

import (
	"errors"
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/v1/orders. It turns the caller's cart into an order.
func (s *Server) Checkout(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleClient)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	coordinates, err := kernel.NewCoordinates(*req.Latitude, *req.Longitude)
	if err != nil {
		return err
	}
	address, err := order.NewDeliveryAddress(req.Street, req.Notes, coordinates)
	if err != nil {
		return err
	}
	payment, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, actor.ID(), address, payment)
	if err != nil {
		return err
	}
	if err = s.h.Checkout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// RequestTransition handles POST /api/v1/orders/:orderID/transitions.
func (s *Server) RequestTransition(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return err
	}

	var req TransitionRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Target)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, req.ExpectedVersion, actorOf(c), target)
	if err != nil {
		return err
	}
	if err = s.h.RequestTransition.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.Transitions.WithLabelValues(target.String()).Inc()

	return c.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/:orderID/claim. The calling driver
// becomes the order's driver.
func (s *Server) ClaimOrder(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleDriver)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return err
	}
	var req VersionedRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor.ID(), req.ExpectedVersion)
	if err != nil {
		return err
	}
	err = s.h.ClaimOrder.Handle(c.Request().Context(), cmd)
	s.metrics.Claims.WithLabelValues(claimOutcome(err)).Inc()
	if err != nil {
		return err
	}
	s.metrics.Transitions.WithLabelValues(order.Assigned.String()).Inc()

	return c.NoContent(http.StatusNoContent)
}

func claimOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.ClaimWon
	case errors.Is(err, order.ErrAlreadyClaimed), errors.Is(err, errs.ErrVersionConflict):
		return metrics.ClaimLost
	default:
		return metrics.ClaimRejected
	}
}

// ReleaseOrder handles POST /api/v1/orders/:orderID/release.
func (s *Server) ReleaseOrder(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleDriver, kernel.RoleAdmin)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return err
	}
	var req VersionedRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReleaseOrderCommand(orderID, req.ExpectedVersion, actor)
	if err != nil {
		return err
	}
	if err = s.h.ReleaseOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.Transitions.WithLabelValues(order.Ready.String()).Inc()

	return c.NoContent(http.StatusNoContent)
}

// GetClaimableOrders handles GET /api/v1/orders/claimable.
func (s *Server) GetClaimableOrders(c echo.Context) error {
	if _, err := requireRole(c, kernel.RoleDriver, kernel.RoleAdmin); err != nil {
		return err
	}

	limit := s.claimablePageSize
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	query, err := queries.NewGetClaimableOrdersQuery(limit)
	if err != nil {
		return err
	}
	orders, err := s.h.GetClaimableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newClaimableOrdersResponse(orders))
}

// GetOrderTracking handles GET /api/v1/orders/:orderID/tracking.
func (s *Server) GetOrderTracking(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID, actorOf(c))
	if err != nil {
		return err
	}
	tracking, err := s.h.GetOrderTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTrackingResponse(tracking))
}
