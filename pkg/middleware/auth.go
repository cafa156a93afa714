package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/pkg/api"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

type AuthMiddleware struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthMiddleware(logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		logger: logger.Named("auth_middleware"),
		now:    time.Now,
	}
}

// Auth кладет сессию бэкенда в контекст запроса.
// Отсутствующий или просроченный токен дает 401, редиректами занимается фронтенд.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Debug("Пустой заголовок Authorization", zap.String("uri", c.Request().RequestURI))
			return api.ErrorResponse(c, apperrors.ErrEmptyAuthHeader)
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("Неверный формат заголовка Authorization")
			return api.ErrorResponse(c, apperrors.ErrInvalidAuthHeader)
		}

		sess, err := session.Parse(parts[1], m.now())
		if err != nil {
			m.logger.Info("Сессия отклонена", zap.Error(err))
			return api.ErrorResponse(c, err)
		}

		c.SetRequest(c.Request().WithContext(session.WithSession(c.Request().Context(), sess)))
		return next(c)
	}
}

// RequireRole пропускает только пользователей с одной из ролей.
// Токен без роли (в том числе непрозрачный) получает 403.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.FromContext(c.Request().Context())
			if err != nil {
				return api.ErrorResponse(c, err)
			}
			if sess.HasRole(roles...) {
				return next(c)
			}
			m.logger.Warn("Доступ запрещен для роли",
				zap.String("role", sess.Role),
				zap.Int64("user_id", sess.UserID),
			)
			return api.ErrorResponse(c, apperrors.ErrForbidden)
		}
	}
}
