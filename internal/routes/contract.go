package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
	"tire-service/pkg/middleware"
	"tire-service/pkg/session"
)

func runContractRouter(secureGroup *echo.Group, ctrl *controllers.ContractController, authMW *middleware.AuthMiddleware) {
	managerOnly := authMW.RequireRole(session.RoleManager)

	secureGroup.GET("/contracts/:id/services", ctrl.Services)
	secureGroup.GET("/contracts/prices/template", ctrl.Template, managerOnly)
	secureGroup.GET("/contracts/:id/prices/export", ctrl.Export, managerOnly)
	secureGroup.POST("/contracts/:id/prices", ctrl.Upload, managerOnly)
}
