package routes

import (
	"github.com/labstack/echo/v4"

	"elaundry/internal/controllers"
)

func runLiveRouter(e *echo.Echo, ws *controllers.WebSocketController, health *controllers.HealthController) {
	e.GET("/ws/page", ws.ServeWs)
	e.GET("/healthz", health.Healthz)
}
