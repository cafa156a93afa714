package backend

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Пути REST API шиномонтажа.
const (
	pathLogin           = "/auth/login"
	pathRegister        = "/auth/register"
	pathManagerOrders   = "/manager"
	pathWorkerOrders    = "/worker"
	PathWorkers         = "/manager/workers"
	PathServices        = "/manager/services"
	PathClients         = "/manager/clients"
	PathContracts       = "/manager/contracts"
	PathMaterials       = "/manager/materials"
	PathSalary          = "/manager/salary"
	pathPriceTemplate   = "/manager/contracts/prices/template"
	pathManagerStats    = "/manager/statistics"
	pathWorkerStats     = "/worker/statistics"
	priceUploadField    = "file"
	maxErrorBodyPreview = 512
)

// Client - типизированный клиент REST API бэкенда.
// Каждый вызов получает сессию явно: глобального токена у клиента нет.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.Named("backend_client"),
	}
}

func (c *Client) Name() string {
	return "tire-backend"
}
