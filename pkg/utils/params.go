package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tire-service/pkg/errors"
)

// ParseIDParam читает положительный числовой параметр пути.
func ParseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, fmt.Sprintf("Неверный формат параметра %s", name), err)
	}
	return id, nil
}
