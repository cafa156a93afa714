package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type Material struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// MaterialCard - технологическая карта: какие материалы расходует услуга.
type MaterialCard struct {
	ID    int64              `json:"id"`
	Name  string             `json:"name"`
	Items []MaterialCardItem `json:"items"`
	Note  null.String        `json:"note"`
}

type MaterialCardItem struct {
	MaterialID int64           `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}
