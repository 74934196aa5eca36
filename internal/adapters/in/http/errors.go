package http

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorMapping struct {
	target error
	status int
	reason string
}

// Order matters: the first match wins, and the domain sentinels are checked
// before the generic errs categories they may wrap.
var errorMappings = []errorMapping{
	{order.ErrAlreadyClaimed, http.StatusConflict, "already_claimed"},
	{errs.ErrVersionConflict, http.StatusConflict, "version_conflict"},
	{order.ErrNotAuthorized, http.StatusForbidden, "not_authorized"},
	{order.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
	{driver.ErrDriverUnavailable, http.StatusUnprocessableEntity, "driver_unavailable"},
	{services.ErrEmptyCart, http.StatusUnprocessableEntity, "empty_cart"},
	{services.ErrBusinessClosed, http.StatusUnprocessableEntity, "business_closed"},
	{services.ErrMinimumNotMet, http.StatusUnprocessableEntity, "minimum_not_met"},
	{services.ErrProductUnavailable, http.StatusUnprocessableEntity, "product_unavailable"},
	{cart.ErrBusinessMismatch, http.StatusUnprocessableEntity, "business_mismatch"},
	{errs.ErrObjectNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "invalid_request"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "invalid_request"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "invalid_request"},
}

func toHTTPError(err error) Error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return Error{Code: he.Code, Reason: reasonForStatus(he.Code), Message: fmt.Sprint(he.Message)}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return Error{Code: m.status, Reason: m.reason, Message: err.Error()}
		}
	}

	return Error{
		Code:    http.StatusInternalServerError,
		Reason:  "internal",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func reasonForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthenticated"
	case http.StatusForbidden:
		return "not_authorized"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "http_error"
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := toHTTPError(err)
	if body.Code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(body.Code)
	} else {
		err = c.JSON(body.Code, body)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}
