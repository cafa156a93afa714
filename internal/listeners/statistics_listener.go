package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tire-service/internal/events"
	"tire-service/pkg/eventbus"
)

// StatisticsInvalidator - то, что умеет сбросить закешированную статистику.
type StatisticsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// StatisticsListener сбрасывает кеш статистики, когда появляется новый заказ.
type StatisticsListener struct {
	stats  StatisticsInvalidator
	logger *zap.Logger
}

func NewStatisticsListener(stats StatisticsInvalidator, logger *zap.Logger) *StatisticsListener {
	return &StatisticsListener{stats: stats, logger: logger.Named("statistics_listener")}
}

func (l *StatisticsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderSubmittedEventName, l.handleOrderSubmitted)
}

func (l *StatisticsListener) handleOrderSubmitted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderSubmittedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", event)
	}
	if err := l.stats.Invalidate(ctx); err != nil {
		return fmt.Errorf("не удалось сбросить кеш статистики после заказа %d: %w", e.OrderID, err)
	}
	l.logger.Debug("Кеш статистики сброшен",
		zap.Int64("order_id", e.OrderID),
		zap.String("total", e.TotalAmount.StringFixed(2)),
	)
	return nil
}
