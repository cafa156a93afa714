package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// Service - услуга в прайсе договора.
// Kind и WheelType бэкенд может не передавать, тогда они выводятся из названия.
type Service struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Kind           null.String     `json:"kind"`
	WheelType      null.String     `json:"wheel_type"`
	Price          decimal.Decimal `json:"price"`
	ContractID     int64           `json:"contract_id"`
	MaterialCardID null.Int64      `json:"material_card_id"`
}
