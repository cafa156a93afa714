package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/internal/pricing"
	"tire-service/pkg/contextkeys"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("contract_id")
		assert.Equal(t, PathServices, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Балансировка колеса","price":300,"contract_id":7}]`))
	})

	services, err := c.ListContractServices(context.Background(), &session.Session{Token: "abc"}, 7)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "7", gotQuery)
	assert.True(t, services[0].Price.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "tire-backend", c.Name())
}

func TestClient_UnauthorizedIsTyped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	})

	_, err := c.ListClients(context.Background(), &session.Session{Token: "old"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestClient_APIErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Клиент с таким ИНН уже существует"}`))
	})

	_, err := Create[entities.Client](context.Background(), c, &session.Session{Token: "t"}, PathClients, dto.CreateClientDTO{Name: "ООО Ромашка"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Клиент с таким ИНН уже существует", apiErr.Error())
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
}

func TestClient_NotFoundMatchesSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetClient(context.Background(), &session.Session{Token: "t"}, 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_ServerErrorBecomesBadGateway(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListWorkers(context.Background(), &session.Session{Token: "t"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, zap.NewNop())
	_, err := c.ListWorkers(context.Background(), &session.Session{Token: "t"})
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusBadGateway, netErr.HTTPStatus())
}

func TestClient_LoginWithoutSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/auth/login", r.URL.Path)

		var in dto.LoginDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "manager", in.Login)

		_, _ = w.Write([]byte(`{"token":"jwt-token","user":{"id":1,"login":"manager","role":"manager"}}`))
	})

	res, err := c.Login(context.Background(), dto.LoginDTO{Login: "manager", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, "manager", res.User.Role)
}

func TestClient_UploadPricesMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manager/contracts/3/prices", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "prices.xlsx", header.Filename)
		assert.Equal(t, "payload", string(content))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UploadPrices(context.Background(), &session.Session{Token: "t"}, 3, "prices.xlsx", strings.NewReader("payload"))
	require.NoError(t, err)
}

func TestToPricingService(t *testing.T) {
	byName := ToPricingService(entities.Service{ID: 1, Name: "Снятие колеса (спарка)", Price: decimal.NewFromInt(500)})
	assert.Equal(t, pricing.KindDismount, byName.Kind)
	assert.Equal(t, pricing.WheelDual, byName.AppliesTo)

	explicit := ToPricingService(entities.Service{
		ID:        2,
		Name:      "Монтаж ведущего колеса",
		Kind:      null.StringFrom("mount"),
		WheelType: null.StringFrom("single"),
		Price:     decimal.NewFromInt(450),
	})
	assert.Equal(t, pricing.KindMount, explicit.Kind)
	assert.Equal(t, pricing.WheelSingle, explicit.AppliesTo)

	generic := ToPricingService(entities.Service{ID: 3, Name: "Установка датчика", Kind: null.StringFrom("generic")})
	assert.Equal(t, pricing.KindGeneric, generic.Kind)
	assert.Equal(t, pricing.WheelAny, generic.AppliesTo)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var gotID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := context.WithValue(context.Background(), contextkeys.RequestIDKey, "req-1")
	workers, err := c.ListWorkers(ctx, &session.Session{Token: "t"})
	require.NoError(t, err)
	assert.Empty(t, workers)
	assert.Equal(t, "req-1", gotID)
}
