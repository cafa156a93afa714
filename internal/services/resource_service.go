package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"tire-service/internal/integrations/backend"
	"tire-service/pkg/session"
)

// ResourceService пробрасывает CRUD справочника в бэкенд.
// onChange вызывается после успешного изменения (например, сброс кеша прайсов).
type ResourceService[T any] struct {
	client   *backend.Client
	path     string
	onChange func(ctx context.Context)
	logger   *zap.Logger
}

func NewResourceService[T any](client *backend.Client, path string, logger *zap.Logger) *ResourceService[T] {
	return &ResourceService[T]{client: client, path: path, logger: logger}
}

func (s *ResourceService[T]) OnChange(fn func(ctx context.Context)) *ResourceService[T] {
	s.onChange = fn
	return s
}

// Scoped - тот же справочник по вложенному пути (машины клиента).
func (s *ResourceService[T]) Scoped(path string) *ResourceService[T] {
	scoped := *s
	scoped.path = path
	return &scoped
}

func (s *ResourceService[T]) List(ctx context.Context, sess *session.Session, query url.Values) ([]T, error) {
	return backend.List[T](ctx, s.client, sess, s.path, query)
}

func (s *ResourceService[T]) Get(ctx context.Context, sess *session.Session, id int64) (T, error) {
	return backend.Get[T](ctx, s.client, sess, s.path, id)
}

func (s *ResourceService[T]) Create(ctx context.Context, sess *session.Session, payload interface{}) (T, error) {
	item, err := backend.Create[T](ctx, s.client, sess, s.path, payload)
	if err != nil {
		return item, err
	}
	s.changed(ctx, "create", 0)
	return item, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, sess *session.Session, id int64, payload interface{}) (T, error) {
	item, err := backend.Update[T](ctx, s.client, sess, s.path, id, payload)
	if err != nil {
		return item, err
	}
	s.changed(ctx, "update", id)
	return item, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if err := backend.Delete(ctx, s.client, sess, s.path, id); err != nil {
		return err
	}
	s.changed(ctx, "delete", id)
	return nil
}

func (s *ResourceService[T]) changed(ctx context.Context, op string, id int64) {
	s.logger.Info("Справочник изменен", zap.String("path", s.path), zap.String("op", op), zap.Int64("id", id))
	if s.onChange != nil {
		s.onChange(ctx)
	}
}
