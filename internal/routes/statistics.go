package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
)

func runStatisticsRouter(secureGroup *echo.Group, ctrl *controllers.StatisticsController) {
	secureGroup.GET("/statistics", ctrl.Get)
}
