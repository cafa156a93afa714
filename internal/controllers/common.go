package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sessionFrom(ctx echo.Context) (*session.Session, error) {
	return session.FromContext(ctx.Request().Context())
}

// bindAndValidate - общий разбор тела запроса для всех контроллеров.
func bindAndValidate(ctx echo.Context, target interface{}) error {
	if err := ctx.Bind(target); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные в теле запроса", err)
	}
	if err := ctx.Validate(target); err != nil {
		return err
	}
	return nil
}

func sendXLSX(ctx echo.Context, filename string, content []byte) error {
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, xlsxContentType, content)
}
