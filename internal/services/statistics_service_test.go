package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tire-service/internal/repositories"
	"tire-service/pkg/session"
)

func TestStatistics_CachedUntilInvalidated(t *testing.T) {
	fb := newFakeBackend()
	svc := NewStatisticsService(fb, repositories.NewMemoryCacheRepository(), time.Minute, zap.NewNop())
	ctx := context.Background()
	sess := &session.Session{Token: "t", UserID: 1, Role: session.RoleManager}
	query := url.Values{"from": {"2024-01-01"}}

	first, err := svc.ForSession(ctx, sess, query)
	require.NoError(t, err)
	second, err := svc.ForSession(ctx, sess, query)
	require.NoError(t, err)
	assert.Equal(t, first.OrdersCount, second.OrdersCount)
	assert.Equal(t, 1, fb.statsCalls)

	_, err = svc.ForSession(ctx, sess, url.Values{"from": {"2024-02-01"}})
	require.NoError(t, err)
	assert.Equal(t, 2, fb.statsCalls)

	require.NoError(t, svc.Invalidate(ctx))
	third, err := svc.ForSession(ctx, sess, query)
	require.NoError(t, err)
	assert.Equal(t, 3, fb.statsCalls)
	assert.Equal(t, int64(3), third.OrdersCount)
}

func TestStatistics_WorkerScopeIsSeparate(t *testing.T) {
	fb := newFakeBackend()
	svc := NewStatisticsService(fb, repositories.NewMemoryCacheRepository(), time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := svc.ForSession(ctx, &session.Session{Token: "a", UserID: 1, Role: session.RoleManager}, nil)
	require.NoError(t, err)
	stats, err := svc.ForSession(ctx, &session.Session{Token: "b", UserID: 2, Role: session.RoleWorker}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.OrdersCount)
	assert.Equal(t, 2, fb.statsCalls)
}

func TestReferences_LoadsBothLists(t *testing.T) {
	svc := NewReferenceService(newFakeBackend(), zap.NewNop())
	refs, err := svc.OrderFormReferences(context.Background(), &session.Session{Token: "t"})
	require.NoError(t, err)
	assert.Len(t, refs.Clients, 3)
	assert.Len(t, refs.Workers, 1)
}

func TestOrders_ListByRole(t *testing.T) {
	svc := NewOrderService(newFakeBackend(), zap.NewNop())
	ctx := context.Background()

	all, err := svc.List(ctx, &session.Session{Token: "m", Role: session.RoleManager}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(ctx, &session.Session{Token: "w", Role: session.RoleWorker}, nil)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}
