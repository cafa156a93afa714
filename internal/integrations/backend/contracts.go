package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"tire-service/pkg/session"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PriceTemplate скачивает шаблон прайса (xlsx) как есть.
func (c *Client) PriceTemplate(ctx context.Context, sess *session.Session) ([]byte, error) {
	body, _, err := c.do(ctx, sess, request{
		method: http.MethodGet,
		path:   pathPriceTemplate,
		accept: xlsxMime,
	})
	return body, err
}

// UploadPrices отправляет заполненный прайс договора.
func (c *Client) UploadPrices(ctx context.Context, sess *session.Session, contractID int64, filename string, content io.Reader) error {
	path := fmt.Sprintf("%s/%d/prices", PathContracts, contractID)
	_, err := c.uploadFile(ctx, sess, path, priceUploadField, filename, content)
	return err
}
