package routes

import (
	"github.com/labstack/echo/v4"

	"elaundry/internal/controllers"
)

func runPageRouter(e *echo.Echo, ctrl *controllers.PageController) {
	e.GET("/", ctrl.Landing)
	e.GET("/service", ctrl.Service)
	e.GET("/profile", ctrl.Profile)
	e.GET("/profile/orders.xlsx", ctrl.ExportOrders)
}

func runAssetRouter(e *echo.Echo, ctrl *controllers.AssetController) {
	e.GET("/static/*", ctrl.Serve)
}
