package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func badParam(c echo.Context, name string) error {
	if c.Param(name) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + name + " path param"})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
}

func badQuery(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameter " + name})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}
