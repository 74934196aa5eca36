package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateBusiness handles POST /api/v1/businesses.
func (s *Server) CreateBusiness(c echo.Context) error {
	if _, err := requireRole(c, kernel.RoleAdmin); err != nil {
		return err
	}

	var req CreateBusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	fee, err := kernel.MoneyFromString(req.DeliveryFee)
	if err != nil {
		return err
	}
	minimum, err := kernel.MoneyFromString(req.MinimumOrder)
	if err != nil {
		return err
	}

	businessID := kernel.NewUUID()
	cmd, err := commands.NewCreateBusinessCommand(businessID, req.Name, req.IsOpen, fee, minimum)
	if err != nil {
		return err
	}
	if err = s.h.CreateBusiness.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: businessID.String()})
}

// CreateProduct handles POST /api/v1/businesses/:businessID/products.
func (s *Server) CreateProduct(c echo.Context) error {
	if _, err := requireRole(c, kernel.RoleAdmin); err != nil {
		return err
	}

	businessID, err := kernel.UUIDFromString(c.Param("businessID"))
	if err != nil {
		return err
	}
	var req CreateProductRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, businessID, req.Name, price, req.Available)
	if err != nil {
		return err
	}
	if err = s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}
