package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
)

func runOrderRouter(secureGroup *echo.Group, ctrl *controllers.OrderController) {
	secureGroup.GET("/orders", ctrl.List)
	secureGroup.GET("/references", ctrl.References)
}
