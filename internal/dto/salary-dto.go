package dto

import "github.com/shopspring/decimal"

type CreateSalaryAdjustmentDTO struct {
	WorkerID int64           `json:"worker_id" validate:"required,gt=0"`
	Kind     string          `json:"kind" validate:"required,oneof=bonus penalty"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0"`
	Reason   *string         `json:"reason,omitempty" validate:"omitempty,max=500"`
}
