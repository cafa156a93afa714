package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/services"
	"tire-service/pkg/api"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/utils"
)

const priceSheetUploadContext = "price_sheet"

// ContractController - прайсы договоров: просмотр, шаблон, загрузка и выгрузка xlsx.
type ContractController struct {
	catalog *services.CatalogService
	sheets  *services.PriceSheetService
	logger  *zap.Logger
}

func NewContractController(catalog *services.CatalogService, sheets *services.PriceSheetService, logger *zap.Logger) *ContractController {
	return &ContractController{catalog: catalog, sheets: sheets, logger: logger}
}

// Services - прайс договора с видом услуг (GET /contracts/:id/services).
func (c *ContractController) Services(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	services, err := c.catalog.Services(ctx.Request().Context(), sess, id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList[dto.ServiceDTO](ctx, "Прайс договора", services)
}

func (c *ContractController) Template(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	content, err := c.sheets.Template(ctx.Request().Context(), sess)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return sendXLSX(ctx, "price_template.xlsx", content)
}

func (c *ContractController) Export(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	content, err := c.sheets.Export(ctx.Request().Context(), sess, id)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return sendXLSX(ctx, fmt.Sprintf("prices_contract_%d.xlsx", id), content)
}

// Upload принимает xlsx из поля "file" (POST /contracts/:id/prices).
func (c *ContractController) Upload(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Файл прайса не передан", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось открыть файл", err))
	}
	defer file.Close()

	if err := utils.ValidateFile(fileHeader, file, priceSheetUploadContext); err != nil {
		c.logger.Warn("Файл прайса отклонен", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err))
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось прочитать файл", err))
	}

	result, err := c.sheets.Upload(ctx.Request().Context(), sess, id, fileHeader.Filename, content)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Прайс договора загружен", result)
}
