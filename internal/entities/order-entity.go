package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// RequiresClient - при безналичном расчете клиент и его договор обязательны.
func (m PaymentMethod) RequiresClient() bool {
	return m == PaymentTransfer
}

type Order struct {
	ID            int64           `json:"id"`
	ClientID      int64           `json:"client_id"`
	ClientName    null.String     `json:"client_name"`
	WorkerID      int64           `json:"worker_id"`
	WorkerName    null.String     `json:"worker_name"`
	VehicleNumber string          `json:"vehicle_number"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TruckType     null.String     `json:"truck_type"`
	WheelPosition null.String     `json:"wheel_position"`
	Services      []OrderService  `json:"services"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	Comment       null.String     `json:"comment"`
	CreatedAt     null.Time       `json:"created_at"`
}

// OrderService - услуга в заказе с ценой, определенной для позиции колеса.
type OrderService struct {
	ServiceID     int64           `json:"service_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	WheelPosition string          `json:"wheel_position"`
}
