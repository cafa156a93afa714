package backend

import (
	"context"
	"net/http"
	"net/url"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/pkg/session"
)

func (c *Client) ListManagerOrders(ctx context.Context, sess *session.Session, query url.Values) ([]entities.Order, error) {
	return List[entities.Order](ctx, c, sess, pathManagerOrders, query)
}

func (c *Client) ListWorkerOrders(ctx context.Context, sess *session.Session, query url.Values) ([]entities.Order, error) {
	return List[entities.Order](ctx, c, sess, pathWorkerOrders, query)
}

func (c *Client) CreateOrder(ctx context.Context, sess *session.Session, in dto.CreateOrderDTO) (entities.Order, error) {
	return sendJSON[entities.Order](ctx, c, sess, http.MethodPost, pathManagerOrders, in)
}
