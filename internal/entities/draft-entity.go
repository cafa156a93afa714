package entities

import "time"

// OrderDraft - заказ, который менеджер собирает в бланке до отправки в бэкенд.
type OrderDraft struct {
	ID            string        `json:"id"`
	Owner         string        `json:"owner"`
	TruckType     string        `json:"truck_type"`
	WheelPosition string        `json:"wheel_position"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ClientID      int64         `json:"client_id"`
	ContractID    int64         `json:"contract_id"`
	WorkerID      int64         `json:"worker_id"`
	VehicleNumber string        `json:"vehicle_number"`
	ServiceIDs    []int64       `json:"service_ids"`
	Comment       string        `json:"comment"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
