package http

import (
	"net/http"
	"slices"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity arrives from the gateway that authenticated the caller.
const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"

	actorKey = "actor"
)

func withActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roleHeader := c.Request().Header.Get(HeaderActorRole)
		idHeader := c.Request().Header.Get(HeaderActorID)
		if roleHeader == "" || idHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "actor headers are required")
		}

		role, err := kernel.ParseRole(roleHeader)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		id, err := kernel.UUIDFromString(idHeader)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		actor, err := kernel.NewActor(role, id)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		c.Set(actorKey, actor)
		return next(c)
	}
}

func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}

// requireRole returns the actor when it holds one of roles.
func requireRole(c echo.Context, roles ...kernel.Role) (kernel.Actor, error) {
	actor := actorOf(c)
	if !slices.Contains(roles, actor.Role()) {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusForbidden,
			actor.Role().String()+" may not call this endpoint")
	}
	return actor, nil
}
