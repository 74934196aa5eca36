package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDrivers handles GET /api/v1/drivers?available=true.
func (s *Server) GetDrivers(c echo.Context) error {
	if _, err := requireRole(c, kernel.RoleAdmin); err != nil {
		return err
	}

	availableOnly := false
	if raw := c.QueryParam("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
		}
		availableOnly = parsed
	}

	drivers, err := s.h.GetDrivers.Handle(c.Request().Context(), queries.NewGetDriversQuery(availableOnly))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newDriversResponse(drivers))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	if _, err := requireRole(c, kernel.RoleAdmin); err != nil {
		return err
	}

	var req CreateDriverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name)
	if err != nil {
		return err
	}
	if err = s.h.CreateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// ChangeDriverAvailability handles PUT /api/v1/drivers/:driverID/availability.
// Drivers may only change their own availability.
func (s *Server) ChangeDriverAvailability(c echo.Context) error {
	actor, err := requireRole(c, kernel.RoleDriver, kernel.RoleAdmin)
	if err != nil {
		return err
	}

	driverID, err := kernel.UUIDFromString(c.Param("driverID"))
	if err != nil {
		return err
	}
	if actor.Role() == kernel.RoleDriver && !actor.ID().IsEqual(driverID) {
		return echo.NewHTTPError(http.StatusForbidden, "drivers may only change their own availability")
	}

	var req AvailabilityRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	availability, err := driver.ParseAvailability(req.Availability)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDriverAvailabilityCommand(driverID, availability)
	if err != nil {
		return err
	}
	if err = s.h.ChangeAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
