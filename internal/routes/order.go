package routes

import (
	"github.com/labstack/echo/v4"

	"elaundry/internal/controllers"
)

func runOrderRouter(e *echo.Echo, api *echo.Group, ctrl *controllers.OrderController) {
	e.POST("/orders", ctrl.SubmitForm)
	api.POST("/orders", ctrl.CreateOrder)
}
