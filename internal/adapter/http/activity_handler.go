package http

import (
	"log/slog"
	"net/http"
	"strconv"

	ucActivity "peerlend-backend/internal/usecase/activity"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	uc  *ucActivity.Usecase
	log *slog.Logger
}

func NewActivityHandler(uc *ucActivity.Usecase, log *slog.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, log: log}
}

// List serves the community feed, newest first. ?limit defaults to 20, max 100.
func (h *ActivityHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badQuery(c, "limit")
		}
		limit = n
	}
	out, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
