package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/pkg/session"
)

type AuthService struct {
	backend AuthBackend
	logger  *zap.Logger
	now     func() time.Time
}

func NewAuthService(backend AuthBackend, logger *zap.Logger) *AuthService {
	return &AuthService{backend: backend, logger: logger.Named("auth_service"), now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, in dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	res, err := s.backend.Login(ctx, in)
	if err != nil {
		s.logger.Info("Неудачная попытка входа", zap.String("login", in.Login), zap.Error(err))
		return nil, err
	}
	return s.respond(res)
}

func (s *AuthService) Register(ctx context.Context, in dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	res, err := s.backend.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Зарегистрирован пользователь", zap.String("login", in.Login), zap.String("role", in.Role))
	return s.respond(res)
}

// respond дополняет ответ бэкенда сроком действия токена, если его можно прочитать.
func (s *AuthService) respond(res dto.BackendAuthResponse) (*dto.AuthResponseDTO, error) {
	sess, err := session.Parse(res.Token, s.now())
	if err != nil {
		return nil, err
	}
	out := &dto.AuthResponseDTO{Token: res.Token, User: res.User}
	if !sess.ExpiresAt.IsZero() {
		expires := sess.ExpiresAt
		out.ExpiresAt = &expires
	}
	return out, nil
}
