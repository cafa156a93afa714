package backend

import (
	"context"
	"net/http"

	"tire-service/internal/dto"
)

// Login и Register вызываются без сессии: токен выдает сам бэкенд.
func (c *Client) Login(ctx context.Context, in dto.LoginDTO) (dto.BackendAuthResponse, error) {
	return sendJSON[dto.BackendAuthResponse](ctx, c, nil, http.MethodPost, pathLogin, in)
}

func (c *Client) Register(ctx context.Context, in dto.RegisterDTO) (dto.BackendAuthResponse, error) {
	return sendJSON[dto.BackendAuthResponse](ctx, c, nil, http.MethodPost, pathRegister, in)
}
