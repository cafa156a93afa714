package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tire-service/internal/entities"
	"tire-service/internal/repositories"
	"tire-service/pkg/session"
)

// StatisticsKeyPrefix - общий префикс ключей кеша статистики, его сбрасывает слушатель заказов.
const StatisticsKeyPrefix = "stats:"

type StatisticsService struct {
	backend StatisticsBackend
	cache   repositories.CacheRepositoryInterface
	ttl     time.Duration
	logger  *zap.Logger
}

func NewStatisticsService(
	backend StatisticsBackend,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) *StatisticsService {
	return &StatisticsService{backend: backend, cache: cache, ttl: ttl, logger: logger.Named("statistics_service")}
}

// ForSession отдает статистику менеджера или сотрудника в зависимости от роли.
func (s *StatisticsService) ForSession(ctx context.Context, sess *session.Session, query url.Values) (*entities.Statistics, error) {
	if sess.Role == session.RoleWorker {
		return s.Worker(ctx, sess, query)
	}
	return s.Manager(ctx, sess, query)
}

func (s *StatisticsService) Manager(ctx context.Context, sess *session.Session, query url.Values) (*entities.Statistics, error) {
	return s.cached(ctx, session.RoleManager, sess, query, s.backend.ManagerStatistics)
}

func (s *StatisticsService) Worker(ctx context.Context, sess *session.Session, query url.Values) (*entities.Statistics, error) {
	return s.cached(ctx, session.RoleWorker, sess, query, s.backend.WorkerStatistics)
}

type statsFetcher func(ctx context.Context, sess *session.Session, query url.Values) (entities.Statistics, error)

func (s *StatisticsService) cached(ctx context.Context, scope string, sess *session.Session, query url.Values, fetch statsFetcher) (*entities.Statistics, error) {
	key := StatisticsKeyPrefix + scope + ":" + sess.Subject() + ":" + query.Encode()

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var stats entities.Statistics
		if err := json.Unmarshal([]byte(raw), &stats); err == nil {
			return &stats, nil
		}
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		s.logger.Warn("Кеш статистики недоступен", zap.Error(err))
	}

	stats, err := fetch(ctx, sess, query)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			s.logger.Warn("Не удалось сохранить статистику в кеш", zap.Error(err))
		}
	}
	return &stats, nil
}

// Invalidate сбрасывает всю закешированную статистику.
func (s *StatisticsService) Invalidate(ctx context.Context) error {
	return s.cache.DelByPrefix(ctx, StatisticsKeyPrefix)
}
