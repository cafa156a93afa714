package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tire-service/pkg/contextkeys"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	accept      string
}

// do выполняет запрос и возвращает тело успешного ответа.
// Повторов нет: решение о повторе остается за пользователем.
func (c *Client) do(ctx context.Context, sess *session.Session, r request) ([]byte, http.Header, error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, r.body)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка создания запроса %s %s: %w", r.method, r.path, err)
	}
	if sess != nil {
		req.Header.Set("Authorization", sess.AuthorizationHeader())
	}
	if reqID, ok := ctx.Value(contextkeys.RequestIDKey).(string); ok && reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Бэкенд недоступен",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err),
		)
		return nil, nil, &NetworkError{Endpoint: r.path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Endpoint: r.path, Err: fmt.Errorf("ошибка чтения ответа: %w", err)}
	}

	c.logger.Debug("Ответ бэкенда",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil, fmt.Errorf("%s %s: %w", r.method, r.path, apperrors.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, decodeAPIError(resp.StatusCode, r.path, body)
	}
	return body, resp.Header, nil
}

// decodeAPIError вытаскивает сообщение из {"error": "..."} или {"message": "..."}.
func decodeAPIError(status int, path string, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	apiErr := &APIError{Status: status, Endpoint: path}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Error
		if apiErr.Message == "" {
			apiErr.Message = payload.Message
		}
	}
	if apiErr.Message == "" && len(body) > 0 && len(body) <= maxErrorBodyPreview {
		apiErr.Message = string(bytes.TrimSpace(body))
	}
	return apiErr
}

func encodeBody(payload interface{}) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации тела запроса: %w", err)
	}
	return bytes.NewReader(raw), nil
}

// getJSON и sendJSON - универсальные функции для любых сущностей бэкенда.
func getJSON[T any](ctx context.Context, c *Client, sess *session.Session, path string, query url.Values) (T, error) {
	var out T
	body, _, err := c.do(ctx, sess, request{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("ошибка парсинга JSON для эндпоинта %s: %w", path, err)
	}
	return out, nil
}

func sendJSON[T any](ctx context.Context, c *Client, sess *session.Session, method, path string, payload interface{}) (T, error) {
	var out T
	reader, err := encodeBody(payload)
	if err != nil {
		return out, err
	}
	body, _, err := c.do(ctx, sess, request{
		method:      method,
		path:        path,
		body:        reader,
		contentType: "application/json",
	})
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("ошибка парсинга JSON для эндпоинта %s: %w", path, err)
	}
	return out, nil
}

// List, Get, Create, Update, Delete - CRUD поверх любого ресурса бэкенда.
func List[T any](ctx context.Context, c *Client, sess *session.Session, path string, query url.Values) ([]T, error) {
	items, err := getJSON[[]T](ctx, c, sess, path, query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func Get[T any](ctx context.Context, c *Client, sess *session.Session, path string, id int64) (T, error) {
	return getJSON[T](ctx, c, sess, fmt.Sprintf("%s/%d", path, id), nil)
}

func Create[T any](ctx context.Context, c *Client, sess *session.Session, path string, payload interface{}) (T, error) {
	return sendJSON[T](ctx, c, sess, http.MethodPost, path, payload)
}

func Update[T any](ctx context.Context, c *Client, sess *session.Session, path string, id int64, payload interface{}) (T, error) {
	return sendJSON[T](ctx, c, sess, http.MethodPut, fmt.Sprintf("%s/%d", path, id), payload)
}

func Delete(ctx context.Context, c *Client, sess *session.Session, path string, id int64) error {
	_, _, err := c.do(ctx, sess, request{method: http.MethodDelete, path: fmt.Sprintf("%s/%d", path, id)})
	return err
}

// uploadFile отправляет файл как multipart/form-data.
func (c *Client) uploadFile(ctx context.Context, sess *session.Session, path, field, filename string, content io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("ошибка копирования файла: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart: %w", err)
	}

	body, _, err := c.do(ctx, sess, request{
		method:      http.MethodPost,
		path:        path,
		body:        &buf,
		contentType: writer.FormDataContentType(),
	})
	return body, err
}
