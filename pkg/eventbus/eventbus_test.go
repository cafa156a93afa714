package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

func TestBus_PublishCallsAllListeners(t *testing.T) {
	bus := New(zap.NewNop())
	var calls int32

	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("слушатель упал")
	})
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("чужое событие")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
