package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Сессия
	ErrEmptyAuthHeader   = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidToken      = fmt.Errorf("недопустимый токен")
	ErrTokenExpired      = fmt.Errorf("срок действия сессии истёк")
	ErrUnauthorized      = fmt.Errorf("неавторизован")
	ErrForbidden         = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrSessionNotFoundInContext = fmt.Errorf("сессия не найдена в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("конфликт данных")
)

// HttpError - ошибка с HTTP-статусом и сообщением для пользователя.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// WithDetails прикладывает к ответу дополнительные данные (например, ошибки строк файла).
func (e *HttpError) WithDetails(details interface{}) *HttpError {
	e.Details = details
	return e
}

func NewBadRequestError(message string, err error) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, err)
}

// InvalidInputError - ошибка клиентской валидации до отправки на бэкенд.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
