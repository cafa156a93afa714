package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/internal/integrations/backend"
	"tire-service/internal/pricing"
	"tire-service/internal/repositories"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

const catalogueKeyPrefix = "catalogue:"

// CatalogService отдает прайсы договоров и считает стоимость выбранных услуг.
type CatalogService struct {
	backend CatalogueBackend
	cache   repositories.CacheRepositoryInterface
	ttl     time.Duration
	logger  *zap.Logger
}

func NewCatalogService(
	backend CatalogueBackend,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		backend: backend,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.Named("catalog_service"),
	}
}

func catalogueKey(contractID int64) string {
	return fmt.Sprintf("%s%d", catalogueKeyPrefix, contractID)
}

// Catalogue возвращает прайс договора, по возможности из кеша.
// Сбой кеша не мешает работе: прайс просто запрашивается у бэкенда.
func (s *CatalogService) Catalogue(ctx context.Context, sess *session.Session, contractID int64) (*pricing.Catalogue, error) {
	services, err := s.services(ctx, sess, contractID)
	if err != nil {
		return nil, err
	}
	return backend.ToCatalogue(contractID, services), nil
}

func (s *CatalogService) services(ctx context.Context, sess *session.Session, contractID int64) ([]entities.Service, error) {
	key := catalogueKey(contractID)

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached []entities.Service
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		s.logger.Warn("Поврежденный прайс в кеше, запрашиваем заново", zap.Int64("contract_id", contractID))
	case !errors.Is(err, repositories.ErrCacheMiss):
		s.logger.Warn("Кеш прайсов недоступен", zap.Error(err))
	}

	services, err := s.backend.ListContractServices(ctx, sess, contractID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить прайс договора %d: %w", contractID, err)
	}

	if encoded, err := json.Marshal(services); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			s.logger.Warn("Не удалось сохранить прайс в кеш", zap.Int64("contract_id", contractID), zap.Error(err))
		}
	}
	return services, nil
}

// Services - прайс договора с уже определенным видом услуг для бланка заказа.
func (s *CatalogService) Services(ctx context.Context, sess *session.Session, contractID int64) ([]dto.ServiceDTO, error) {
	services, err := s.services(ctx, sess, contractID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		mapped := backend.ToPricingService(svc)
		item := dto.ServiceDTO{
			ID:         svc.ID,
			Name:       svc.Name,
			Kind:       string(mapped.Kind),
			WheelType:  string(mapped.AppliesTo),
			Price:      svc.Price,
			ContractID: svc.ContractID,
		}
		if svc.MaterialCardID.Valid {
			id := svc.MaterialCardID.Int64
			item.MaterialCardID = &id
		}
		out = append(out, item)
	}
	return out, nil
}

// Invalidate сбрасывает прайс договора после изменения услуг или загрузки цен.
// contractID == 0 сбрасывает все прайсы.
func (s *CatalogService) Invalidate(ctx context.Context, contractID int64) {
	var err error
	if contractID == 0 {
		err = s.cache.DelByPrefix(ctx, catalogueKeyPrefix)
	} else {
		err = s.cache.Del(ctx, catalogueKey(contractID))
	}
	if err != nil {
		s.logger.Warn("Не удалось сбросить кеш прайса", zap.Int64("contract_id", contractID), zap.Error(err))
	}
}

// Quote считает стоимость услуг для позиции без черновика.
func (s *CatalogService) Quote(ctx context.Context, sess *session.Session, in dto.QuoteRequestDTO) (pricing.Quote, error) {
	pos, err := pricing.ParsePosition(in.WheelPosition)
	if err != nil {
		return pricing.Quote{}, apperrors.NewBadRequestError("Некорректная позиция колеса", err)
	}
	catalogue, err := s.Catalogue(ctx, sess, in.ContractID)
	if err != nil {
		return pricing.Quote{}, err
	}

	quote := pricing.BuildQuote(catalogue, in.ServiceIDs, pos)
	s.warnIncomplete(quote, in.ContractID)
	return quote, nil
}

func (s *CatalogService) warnIncomplete(q pricing.Quote, contractID int64) {
	for _, id := range q.Missing {
		s.logger.Warn("Услуга не найдена в прайсе договора, пропущена",
			zap.Int64("service_id", id),
			zap.Int64("contract_id", contractID),
		)
	}
	for _, id := range q.Unpriced {
		s.logger.Debug("Услуга не имеет цены для выбранной позиции",
			zap.Int64("service_id", id),
			zap.String("wheel_type", string(q.WheelType)),
		)
	}
}
