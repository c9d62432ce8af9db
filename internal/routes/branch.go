package routes

import (
	"github.com/labstack/echo/v4"

	"elaundry/internal/controllers"
)

func runBranchRouter(api *echo.Group, ctrl *controllers.BranchController) {
	api.GET("/branches", ctrl.GetBranches)
	api.GET("/branches/viewport", ctrl.Viewport)
	api.GET("/branches/:id", ctrl.FindBranch)
	api.GET("/branches/:id/call", ctrl.Call)
}
