package dto

import "github.com/shopspring/decimal"

type CreateServiceDTO struct {
	Name           string          `json:"name" validate:"required,max=200"`
	Kind           *string         `json:"kind,omitempty" validate:"omitempty,oneof=generic mount dismount"`
	WheelType      *string         `json:"wheel_type,omitempty" validate:"omitempty,oneof=any single dual"`
	Price          decimal.Decimal `json:"price" validate:"gt=0"`
	ContractID     int64           `json:"contract_id" validate:"required,gt=0"`
	MaterialCardID *int64          `json:"material_card_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateServiceDTO struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Kind           *string          `json:"kind,omitempty" validate:"omitempty,oneof=generic mount dismount"`
	WheelType      *string          `json:"wheel_type,omitempty" validate:"omitempty,oneof=any single dual"`
	Price          *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gt=0"`
	MaterialCardID *int64           `json:"material_card_id,omitempty" validate:"omitempty,gt=0"`
}

// ServiceDTO - услуга прайса с уже определенным видом и типом колеса.
type ServiceDTO struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	WheelType      string          `json:"wheel_type"`
	Price          decimal.Decimal `json:"price"`
	ContractID     int64           `json:"contract_id"`
	MaterialCardID *int64          `json:"material_card_id,omitempty"`
}
