package dto

type CreateWorkerDTO struct {
	FullName string  `json:"full_name" validate:"required,max=150"`
	Login    string  `json:"login" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Position *string `json:"position,omitempty" validate:"omitempty,max=100"`
}

type UpdateWorkerDTO struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=150"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Position *string `json:"position,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}
