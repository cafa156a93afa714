package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tire-service/internal/entities"
	apperrors "tire-service/pkg/errors"
)

const draftKeyPrefix = "order_draft:"

type DraftRepositoryInterface interface {
	Save(ctx context.Context, draft *entities.OrderDraft) error
	Find(ctx context.Context, id string) (*entities.OrderDraft, error)
	Delete(ctx context.Context, id string) error
}

// DraftRepository хранит черновики заказов в кеше: они живут не дольше ttl.
type DraftRepository struct {
	cache CacheRepositoryInterface
	ttl   time.Duration
}

func NewDraftRepository(cache CacheRepositoryInterface, ttl time.Duration) DraftRepositoryInterface {
	return &DraftRepository{cache: cache, ttl: ttl}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *DraftRepository) Save(ctx context.Context, draft *entities.OrderDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("ошибка сериализации черновика %s: %w", draft.ID, err)
	}
	return r.cache.Set(ctx, draftKey(draft.ID), raw, r.ttl)
}

func (r *DraftRepository) Find(ctx context.Context, id string) (*entities.OrderDraft, error) {
	raw, err := r.cache.Get(ctx, draftKey(id))
	if errors.Is(err, ErrCacheMiss) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения черновика %s: %w", id, err)
	}

	var draft entities.OrderDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("поврежден черновик %s: %w", id, err)
	}
	return &draft, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Del(ctx, draftKey(id))
}
