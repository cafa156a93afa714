package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "tire-service/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List  []T `json:"list"`
	Total int `json:"total"`
}

// StatusCoder - ошибка, которая сама знает свой HTTP-статус (ошибки бэкенда).
type StatusCoder interface {
	HTTPStatus() int
}

// SuccessOne - для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    ListBody[T]{List: list, Total: len(list)},
	})
}

func ErrorResponse(c echo.Context, err error) error {
	code, msg, details := classify(err)

	if code >= http.StatusInternalServerError {
		if logger, ok := c.Get("logger").(*zap.Logger); ok {
			logger.Error("Ошибка обработки запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", code),
				zap.Error(err),
			)
		}
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
		Body:    details,
	})
}

func classify(err error) (int, string, interface{}) {
	// Для HttpError берем только пользовательское сообщение, без технических деталей
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if ve := validationDetails(httpErr.Err); ve != nil && httpErr.Details == nil {
			return httpErr.Code, httpErr.Message, ve
		}
		return httpErr.Code, httpErr.Message, httpErr.Details
	}

	if ve := validationDetails(err); ve != nil {
		return http.StatusBadRequest, "Ошибка валидации", ve
	}

	if apperrors.IsInvalidInput(err) {
		return http.StatusBadRequest, err.Error(), nil
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrSessionNotFoundInContext):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error(), nil
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus(), err.Error(), nil
	}

	return http.StatusInternalServerError, "Внутренняя ошибка сервера", nil
}

// validationDetails раскладывает ошибки validator/v10 по полям.
func validationDetails(err error) map[string]string {
	var ve validator.ValidationErrors
	if err == nil || !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
