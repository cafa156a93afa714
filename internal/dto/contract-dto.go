package dto

import "github.com/shopspring/decimal"

type CreateContractDTO struct {
	Number         string  `json:"number" validate:"required,max=50"`
	Name           string  `json:"name" validate:"required,max=200"`
	ClientCategory *string `json:"client_category,omitempty" validate:"omitempty,max=100"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateContractDTO struct {
	Number         *string `json:"number,omitempty" validate:"omitempty,max=50"`
	Name           *string `json:"name,omitempty" validate:"omitempty,max=200"`
	ClientCategory *string `json:"client_category,omitempty" validate:"omitempty,max=100"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// PriceRowDTO - строка загружаемого прайса договора.
type PriceRowDTO struct {
	Row       int             `json:"row"`
	ServiceID int64           `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// PriceRowErrorDTO - ошибка в строке файла прайса.
type PriceRowErrorDTO struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type PriceUploadResultDTO struct {
	ContractID int64         `json:"contract_id"`
	Rows       []PriceRowDTO `json:"rows"`
}
