package entities

import "github.com/aarondl/null/v8"

// Client - клиент шиномонтажа. Юрлица работают по договору, частные лица - без.
type Client struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Phone      null.String `json:"phone"`
	Email      null.String `json:"email"`
	INN        null.String `json:"inn"`
	ContractID null.Int64  `json:"contract_id"`
	CreatedAt  null.Time   `json:"created_at"`
}
