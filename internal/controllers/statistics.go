package controllers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/services"
	"tire-service/pkg/api"
)

type StatisticsController struct {
	service *services.StatisticsService
	logger  *zap.Logger
}

func NewStatisticsController(service *services.StatisticsService, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{service: service, logger: logger}
}

// Get - статистика за период (?from=2024-01-01&to=2024-01-31) по роли пользователя.
func (c *StatisticsController) Get(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	query := ctx.QueryParams()
	forwarded := url.Values{}
	for _, key := range []string{"from", "to", "worker_id"} {
		if v := query.Get(key); v != "" {
			forwarded.Set(key, v)
		}
	}

	stats, err := c.service.ForSession(ctx.Request().Context(), sess, forwarded)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Статистика", stats)
}
