package dto

import (
	"time"

	"tire-service/internal/entities"
	"tire-service/internal/pricing"
)

type CreateDraftDTO struct {
	TruckType     string                 `json:"truck_type" validate:"required,truck_type"`
	PaymentMethod entities.PaymentMethod `json:"payment_method" validate:"omitempty,payment_method"`
	ClientID      *int64                 `json:"client_id,omitempty" validate:"omitempty,gt=0"`
	WorkerID      *int64                 `json:"worker_id,omitempty" validate:"omitempty,gt=0"`
	VehicleNumber *string                `json:"vehicle_number,omitempty" validate:"omitempty,vehicle_number"`
}

// UpdateDraftDTO - частичное изменение черновика. Пустая строка позиции сбрасывает выбор.
type UpdateDraftDTO struct {
	TruckType     *string                 `json:"truck_type,omitempty" validate:"omitempty,truck_type"`
	WheelPosition *string                 `json:"wheel_position,omitempty" validate:"omitempty,wheel_position"`
	PaymentMethod *entities.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,payment_method"`
	ClientID      *int64                  `json:"client_id,omitempty" validate:"omitempty,gt=0"`
	WorkerID      *int64                  `json:"worker_id,omitempty" validate:"omitempty,gt=0"`
	VehicleNumber *string                 `json:"vehicle_number,omitempty" validate:"omitempty,vehicle_number"`
	ServiceIDs    *[]int64                `json:"service_ids,omitempty"`
	Comment       *string                 `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type ToggleServiceDTO struct {
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
	Selected  bool  `json:"selected"`
}

// QuoteRequestDTO - расчет без черновика.
type QuoteRequestDTO struct {
	ContractID    int64   `json:"contract_id" validate:"required,gt=0"`
	WheelPosition string  `json:"wheel_position" validate:"omitempty,wheel_position"`
	ServiceIDs    []int64 `json:"service_ids"`
}

type PositionDTO struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	WheelType pricing.WheelType `json:"wheel_type"`
}

type DraftDTO struct {
	ID            string                 `json:"id"`
	TruckType     string                 `json:"truck_type"`
	WheelPosition string                 `json:"wheel_position"`
	PaymentMethod entities.PaymentMethod `json:"payment_method"`
	ClientID      int64                  `json:"client_id"`
	ContractID    int64                  `json:"contract_id"`
	WorkerID      int64                  `json:"worker_id"`
	VehicleNumber string                 `json:"vehicle_number"`
	ServiceIDs    []int64                `json:"service_ids"`
	Comment       string                 `json:"comment"`
	Positions     []PositionDTO          `json:"positions"`
	Quote         pricing.Quote          `json:"quote"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
