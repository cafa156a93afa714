package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "tire-service/pkg/errors"
)

// APIError - бэкенд ответил не-2xx статусом. Message берется из JSON-поля error.
type APIError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("бэкенд вернул статус %d для %s", e.Status, e.Endpoint)
}

// HTTPStatus - статус для ответа нашим клиентам. Сбои бэкенда превращаются в 502.
func (e *APIError) HTTPStatus() int {
	if e.Status >= http.StatusInternalServerError {
		return http.StatusBadGateway
	}
	return e.Status
}

func (e *APIError) Is(target error) bool {
	switch target {
	case apperrors.ErrNotFound:
		return e.Status == http.StatusNotFound
	case apperrors.ErrForbidden:
		return e.Status == http.StatusForbidden
	case apperrors.ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}

// NetworkError - запрос не дошел до бэкенда или ответ не прочитан.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("бэкенд недоступен (%s): %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) HTTPStatus() int {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
