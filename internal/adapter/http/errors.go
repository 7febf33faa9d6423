package http

import (
	"errors"
	"log/slog"
	"net/http"

	"peerlend-backend/internal/domain/business"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, opportunity.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, business.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, loan.ErrInvalidStatus),
		errors.Is(err, opportunity.ErrCapacityExceeded),
		errors.Is(err, opportunity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, opportunity.ErrInvalidState),
		errors.Is(err, opportunity.ErrConflict),
		errors.Is(err, business.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse. Internal errors are logged and
// their text is not sent to the client.
func writeError(c echo.Context, log *slog.Logger, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		if log == nil {
			log = slog.Default()
		}
		log.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
