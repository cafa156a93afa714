package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
)

func runPositionRouter(secureGroup *echo.Group, ctrl *controllers.PositionController) {
	secureGroup.GET("/positions", ctrl.List)
}
