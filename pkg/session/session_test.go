package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tire-service/pkg/errors"
)

func signed(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestParse_ReadsClaims(t *testing.T) {
	now := time.Now()
	token := signed(t, Claims{
		UserID: 42,
		Role:   RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	s, err := Parse(token, now)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.UserID)
	assert.True(t, s.IsManager())
	assert.False(t, s.Expired(now))
	assert.Equal(t, "Bearer "+token, s.AuthorizationHeader())
}

func TestParse_Expired(t *testing.T) {
	now := time.Now()
	token := signed(t, Claims{
		UserID: 1,
		Role:   RoleWorker,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	})

	_, err := Parse(token, now)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParse_OpaqueToken(t *testing.T) {
	s, err := Parse("opaque-session-token", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "opaque-session-token", s.Token)
	assert.True(t, s.ExpiresAt.IsZero())
	assert.False(t, s.Expired(time.Now()))
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("  ", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFoundInContext)

	s := &Session{Token: "t"}
	got, err := FromContext(WithSession(context.Background(), s))
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "user:7", (&Session{Token: "x", UserID: 7}).Subject())

	a := (&Session{Token: "opaque-a"}).Subject()
	b := (&Session{Token: "opaque-b"}).Subject()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, (&Session{Token: "opaque-a"}).Subject())
	assert.Contains(t, a, "token:")
}

func TestHasRole(t *testing.T) {
	manager := &Session{Token: "t", UserID: 1, Role: RoleManager}
	assert.True(t, manager.HasRole(RoleManager))
	assert.True(t, manager.HasRole(RoleWorker, RoleManager))
	assert.False(t, manager.HasRole(RoleWorker))

	opaque := &Session{Token: "opaque-token"}
	assert.False(t, opaque.HasRole(RoleManager))
	assert.False(t, opaque.HasRole(""))
	assert.False(t, opaque.IsManager())
}
