package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/integrations/backend"
	"tire-service/internal/services"
	"tire-service/pkg/api"
	"tire-service/pkg/utils"
)

// ResourceController - CRUD справочника: T - сущность, C и U - тела создания и изменения.
type ResourceController[T any, C any, U any] struct {
	service *services.ResourceService[T]
	title   string
	resolve func(ctx echo.Context) (*services.ResourceService[T], error)
	logger  *zap.Logger
}

func NewResourceController[T any, C any, U any](service *services.ResourceService[T], title string, logger *zap.Logger) *ResourceController[T, C, U] {
	rc := &ResourceController[T, C, U]{service: service, title: title, logger: logger}
	rc.resolve = func(echo.Context) (*services.ResourceService[T], error) { return rc.service, nil }
	return rc
}

// NewVehicleController - машины вложены в клиента: /clients/:clientId/vehicles.
func NewVehicleController[T any, C any, U any](service *services.ResourceService[T], logger *zap.Logger) *ResourceController[T, C, U] {
	rc := NewResourceController[T, C, U](service, "Машины клиента", logger)
	rc.resolve = func(ctx echo.Context) (*services.ResourceService[T], error) {
		clientID, err := utils.ParseIDParam(ctx, "clientId")
		if err != nil {
			return nil, err
		}
		return service.Scoped(backend.VehiclesPath(clientID)), nil
	}
	return rc
}

func (c *ResourceController[T, C, U]) List(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	svc, err := c.resolve(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	items, err := svc.List(ctx.Request().Context(), sess, utils.ForwardQuery(ctx.QueryParams()))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, c.title, items)
}

func (c *ResourceController[T, C, U]) Get(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	svc, err := c.resolve(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	item, err := svc.Get(ctx.Request().Context(), sess, id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, c.title, item)
}

func (c *ResourceController[T, C, U]) Create(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	svc, err := c.resolve(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in C
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	item, err := svc.Create(ctx.Request().Context(), sess, in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Запись успешно создана", item)
}

func (c *ResourceController[T, C, U]) Update(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	svc, err := c.resolve(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in U
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	item, err := svc.Update(ctx.Request().Context(), sess, id, in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Запись успешно обновлена", item)
}

func (c *ResourceController[T, C, U]) Delete(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	svc, err := c.resolve(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := svc.Delete(ctx.Request().Context(), sess, id); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
