package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/register", ctrl.Register)
	secureGroup.GET("/auth/me", ctrl.Me)
}
