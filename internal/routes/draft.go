package routes

import (
	"github.com/labstack/echo/v4"

	"tire-service/internal/controllers"
	"tire-service/pkg/middleware"
	"tire-service/pkg/session"
)

// Бланк заказа доступен только менеджеру.
func runDraftRouter(secureGroup *echo.Group, ctrl *controllers.DraftController, authMW *middleware.AuthMiddleware) {
	managerOnly := authMW.RequireRole(session.RoleManager)

	drafts := secureGroup.Group("/drafts", managerOnly)
	{
		drafts.POST("", ctrl.Create)
		drafts.GET("/:id", ctrl.Get)
		drafts.PATCH("/:id", ctrl.Update)
		drafts.POST("/:id/services", ctrl.ToggleService)
		drafts.POST("/:id/submit", ctrl.Submit)
		drafts.DELETE("/:id", ctrl.Discard)
	}
	secureGroup.POST("/quote", ctrl.Quote, managerOnly)
}
