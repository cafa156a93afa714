package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tire-service/internal/dto"
	"tire-service/pkg/session"
)

type ReferenceService struct {
	backend ReferenceBackend
	logger  *zap.Logger
}

func NewReferenceService(backend ReferenceBackend, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{backend: backend, logger: logger.Named("reference_service")}
}

// OrderFormReferences загружает клиентов и сотрудников параллельно.
// Ошибка любого запроса отменяет второй через общий контекст.
func (s *ReferenceService) OrderFormReferences(ctx context.Context, sess *session.Session) (*dto.ReferencesDTO, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := &dto.ReferencesDTO{}

	g.Go(func() error {
		clients, err := s.backend.ListClients(gctx, sess)
		if err != nil {
			return fmt.Errorf("клиенты: %w", err)
		}
		out.Clients = clients
		return nil
	})
	g.Go(func() error {
		workers, err := s.backend.ListWorkers(gctx, sess)
		if err != nil {
			return fmt.Errorf("сотрудники: %w", err)
		}
		out.Workers = workers
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Не удалось загрузить справочники бланка заказа", zap.Error(err))
		return nil, err
	}
	return out, nil
}
