package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type AdjustmentKind string

const (
	AdjustmentBonus   AdjustmentKind = "bonus"
	AdjustmentPenalty AdjustmentKind = "penalty"
)

// SalaryAdjustment - премия или штраф сотруднику.
type SalaryAdjustment struct {
	ID        int64           `json:"id"`
	WorkerID  int64           `json:"worker_id"`
	Kind      AdjustmentKind  `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    null.String     `json:"reason"`
	CreatedAt null.Time       `json:"created_at"`
}
