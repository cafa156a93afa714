package events

import (
	"github.com/shopspring/decimal"
)

const OrderSubmittedEventName = "order.submitted"

// OrderSubmittedEvent - заказ из черновика создан в бэкенде.
type OrderSubmittedEvent struct {
	OrderID     int64
	DraftID     string
	ClientID    int64
	WorkerID    int64
	TotalAmount decimal.Decimal
}

func (e OrderSubmittedEvent) Name() string {
	return OrderSubmittedEventName
}
