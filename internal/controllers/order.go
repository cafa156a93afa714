package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/entities"
	"tire-service/internal/services"
	"tire-service/pkg/api"
	"tire-service/pkg/utils"
)

const referencesTimeout = 30 * time.Second

type OrderController struct {
	orders     *services.OrderService
	references *services.ReferenceService
	logger     *zap.Logger
}

func NewOrderController(orders *services.OrderService, references *services.ReferenceService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, references: references, logger: logger}
}

// List - журнал заказов. Фильтры передаются в бэкенд как filter[поле]=значение.
func (c *OrderController) List(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	orders, err := c.orders.List(ctx.Request().Context(), sess, utils.ForwardQuery(ctx.QueryParams()))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList[entities.Order](ctx, "Заказы", orders)
}

// References - клиенты и сотрудники для бланка заказа одним запросом.
func (c *OrderController) References(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, referencesTimeout)
	defer cancel()

	refs, err := c.references.OrderFormReferences(reqCtx, sess)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Справочники бланка заказа", refs)
}
