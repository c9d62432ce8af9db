package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elaundry/internal/livepage"
)

type HealthController struct {
	manager *livepage.Manager
}

func NewHealthController(manager *livepage.Manager) *HealthController {
	return &HealthController{manager: manager}
}

func (c *HealthController) Healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": c.manager.Count(),
	})
}
