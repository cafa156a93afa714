package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/services"
	"tire-service/pkg/api"
)

type AuthController struct {
	service *services.AuthService
	logger  *zap.Logger
}

func NewAuthController(service *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{service: service, logger: logger}
}

// Login проксирует вход в бэкенд (POST /auth/login).
func (c *AuthController) Login(ctx echo.Context) error {
	var in dto.LoginDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.service.Login(ctx.Request().Context(), in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Вход выполнен", res)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var in dto.RegisterDTO
	if err := bindAndValidate(ctx, &in); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.service.Register(ctx.Request().Context(), in)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Пользователь зарегистрирован", res)
}

// Me возвращает то, что известно о текущей сессии.
func (c *AuthController) Me(ctx echo.Context) error {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	body := map[string]interface{}{
		"user_id":    sess.UserID,
		"role":       sess.Role,
		"is_manager": sess.IsManager(),
	}
	if !sess.ExpiresAt.IsZero() {
		body["expires_at"] = sess.ExpiresAt
	}
	return api.SuccessOne(ctx, http.StatusOK, "Текущая сессия", body)
}
