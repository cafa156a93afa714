package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"tire-service/internal/entities"
	"tire-service/pkg/session"
)

type OrderService struct {
	backend OrderBackend
	logger  *zap.Logger
}

func NewOrderService(backend OrderBackend, logger *zap.Logger) *OrderService {
	return &OrderService{backend: backend, logger: logger.Named("order_service")}
}

// List - заказы менеджера или только свои заказы сотрудника.
func (s *OrderService) List(ctx context.Context, sess *session.Session, query url.Values) ([]entities.Order, error) {
	if sess.Role == session.RoleWorker {
		return s.backend.ListWorkerOrders(ctx, sess, query)
	}
	return s.backend.ListManagerOrders(ctx, sess, query)
}
