// Файл: internal/controllers/draft.go

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/services"
	"tire-service/pkg/api"
)

// DraftController - бланк заказа: черновик, выбор услуг, расчет и отправка.
type DraftController struct {
	drafts  services.DraftServiceInterface
	catalog *services.CatalogService
	logger  *zap.Logger
}

func NewDraftController(drafts services.DraftServiceInterface, catalog *services.CatalogService, logger *zap.Logger) *DraftController {
	return &DraftController{drafts: drafts, catalog: catalog, logger: logger}
}

func (c *DraftController) Create(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in dto.CreateDraftDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	draft, err := c.drafts.Create(ctx.Request().Context(), sess, in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Черновик заказа создан", draft)
}

func (c *DraftController) Get(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	draft, err := c.drafts.Get(ctx.Request().Context(), sess, ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Черновик заказа", draft)
}

func (c *DraftController) Update(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in dto.UpdateDraftDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	draft, err := c.drafts.Update(ctx.Request().Context(), sess, ctx.Param("id"), in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Черновик обновлен", draft)
}

// ToggleService отмечает или снимает услугу (POST /drafts/:id/services).
func (c *DraftController) ToggleService(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in dto.ToggleServiceDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	draft, err := c.drafts.ToggleService(ctx.Request().Context(), sess, ctx.Param("id"), in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Услуги обновлены", draft)
}

func (c *DraftController) Submit(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	order, err := c.drafts.Submit(ctx.Request().Context(), sess, ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Заказ успешно создан", order)
}

func (c *DraftController) Discard(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := c.drafts.Discard(ctx.Request().Context(), sess, ctx.Param("id")); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Quote - расчет стоимости без черновика (POST /quote).
func (c *DraftController) Quote(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var in dto.QuoteRequestDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	quote, err := c.catalog.Quote(ctx.Request().Context(), sess, in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Расчет стоимости", quote)
}
