package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct{ checks []HealthCheck }

func NewHandler(checks ...HealthCheck) *Handler { return &Handler{checks: checks} }

// Health answers 200 when every dependency responds, 503 otherwise.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Check(ctx); err != nil {
			deps[chk.Name] = "down"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[chk.Name] = "up"
	}

	body := map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	return c.JSON(code, body)
}
