package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/pricing"
	"tire-service/internal/services"
	"tire-service/pkg/api"
	apperrors "tire-service/pkg/errors"
)

type PositionController struct {
	logger *zap.Logger
}

func NewPositionController(logger *zap.Logger) *PositionController {
	return &PositionController{logger: logger}
}

// List - позиции колес для типа грузовика (GET /positions?truck_type=type1).
func (c *PositionController) List(ctx echo.Context) error {
	truck, err := pricing.ParseTruckType(ctx.QueryParam("truck_type"))
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неизвестный тип грузовика", err))
	}
	positions := services.ToPositionDTOs(pricing.Positions(truck))
	return api.SuccessList[dto.PositionDTO](ctx, "Позиции колес", positions)
}
