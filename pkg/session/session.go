package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"tire-service/pkg/contextkeys"
	apperrors "tire-service/pkg/errors"
)

// Роли пользователей бэкенда.
const (
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// Session - токен бэкенда и то, что из него удалось прочитать.
// Передается явно через контекст запроса вместо глобального хранилища.
type Session struct {
	Token     string
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

// Claims - поля JWT, которые выдает бэкенд.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Parse читает токен без проверки подписи: ключ есть только у бэкенда,
// здесь нужен лишь срок действия и роль. Непрозрачный токен принимается как есть.
func Parse(token string, now time.Time) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}

	s := &Session{Token: token}

	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	s.UserID = claims.UserID
	s.Role = claims.Role
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	if s.Expired(now) {
		return nil, apperrors.ErrTokenExpired
	}
	return s, nil
}

// Expired - true, если срок токена известен и прошел.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) IsManager() bool { return s.Role == RoleManager }

// HasRole - роль сессии входит в список. Сессия без роли не проходит никакую проверку.
func (s *Session) HasRole(roles ...string) bool {
	if s.Role == "" {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// Subject - устойчивый ключ владельца сессии для кеша и черновиков.
// Для непрозрачного токена это хеш самого токена.
func (s *Session) Subject() string {
	if s.UserID != 0 {
		return fmt.Sprintf("user:%d", s.UserID)
	}
	sum := sha256.Sum256([]byte(s.Token))
	return "token:" + hex.EncodeToString(sum[:8])
}

// AuthorizationHeader - значение заголовка для запросов к бэкенду.
func (s *Session) AuthorizationHeader() string {
	return "Bearer " + s.Token
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextkeys.SessionKey, s)
}

func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(contextkeys.SessionKey).(*Session)
	if !ok || s == nil {
		return nil, apperrors.ErrSessionNotFoundInContext
	}
	return s, nil
}
