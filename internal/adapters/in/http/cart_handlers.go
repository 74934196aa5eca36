package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleClient)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(actor.ID())
	if err != nil {
		return err
	}
	view, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCartResponse(view))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleClient)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(actor.ID(), productID, req.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// SetCartItemQuantity handles PUT /api/v1/cart/items/:productID. A quantity of
// zero removes the line.
func (s *Server) SetCartItemQuantity(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleClient)
	if err != nil {
		return err
	}

	productID, err := kernel.UUIDFromString(c.Param("productID"))
	if err != nil {
		return err
	}
	var req SetCartItemQuantityRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetCartItemQuantityCommand(actor.ID(), productID, *req.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.SetCartItemQuantity.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleClient)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(actor.ID())
	if err != nil {
		return err
	}
	if err = s.h.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
