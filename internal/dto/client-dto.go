package dto

type CreateClientDTO struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	INN        *string `json:"inn,omitempty" validate:"omitempty,numeric,min=10,max=12"`
	ContractID *int64  `json:"contract_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateClientDTO struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	INN        *string `json:"inn,omitempty" validate:"omitempty,numeric,min=10,max=12"`
	ContractID *int64  `json:"contract_id,omitempty" validate:"omitempty,gt=0"`
}
