package dto

import (
	"github.com/shopspring/decimal"

	"tire-service/internal/entities"
)

// CreateOrderDTO - тело запроса на создание заказа в бэкенде.
type CreateOrderDTO struct {
	ClientID      int64                  `json:"client_id" validate:"required,gt=0"`
	WorkerID      int64                  `json:"worker_id" validate:"required,gt=0"`
	ContractID    int64                  `json:"contract_id" validate:"required,gt=0"`
	VehicleNumber string                 `json:"vehicle_number" validate:"required,vehicle_number"`
	PaymentMethod entities.PaymentMethod `json:"payment_method" validate:"required,payment_method"`
	TruckType     string                 `json:"truck_type" validate:"required,truck_type"`
	WheelPosition string                 `json:"wheel_position" validate:"required,wheel_position"`
	Services      []OrderServiceDTO      `json:"services" validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Comment       *string                `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type OrderServiceDTO struct {
	ServiceID     int64           `json:"service_id" validate:"required,gt=0"`
	Price         decimal.Decimal `json:"price"`
	WheelPosition string          `json:"wheel_position"`
}

// ReferencesDTO - справочники для бланка заказа.
type ReferencesDTO struct {
	Clients []entities.Client `json:"clients"`
	Workers []entities.Worker `json:"workers"`
}
