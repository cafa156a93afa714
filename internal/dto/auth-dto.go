package dto

import (
	"time"

	"tire-service/internal/entities"
)

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=manager worker"`
}

// BackendAuthResponse - ответ бэкенда на /auth/login и /auth/register.
type BackendAuthResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

type AuthResponseDTO struct {
	Token     string        `json:"token"`
	User      entities.User `json:"user"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}
