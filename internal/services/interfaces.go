package services

import (
	"context"
	"io"
	"net/url"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/pkg/eventbus"
	"tire-service/pkg/session"
)

// Узкие интерфейсы над клиентом бэкенда: каждый сервис видит только нужные вызовы.

type CatalogueBackend interface {
	ListContractServices(ctx context.Context, sess *session.Session, contractID int64) ([]entities.Service, error)
}

type ReferenceBackend interface {
	ListClients(ctx context.Context, sess *session.Session) ([]entities.Client, error)
	ListWorkers(ctx context.Context, sess *session.Session) ([]entities.Worker, error)
	GetClient(ctx context.Context, sess *session.Session, id int64) (entities.Client, error)
}

type OrderBackend interface {
	CreateOrder(ctx context.Context, sess *session.Session, in dto.CreateOrderDTO) (entities.Order, error)
	ListManagerOrders(ctx context.Context, sess *session.Session, query url.Values) ([]entities.Order, error)
	ListWorkerOrders(ctx context.Context, sess *session.Session, query url.Values) ([]entities.Order, error)
}

type StatisticsBackend interface {
	ManagerStatistics(ctx context.Context, sess *session.Session, query url.Values) (entities.Statistics, error)
	WorkerStatistics(ctx context.Context, sess *session.Session, query url.Values) (entities.Statistics, error)
}

type AuthBackend interface {
	Login(ctx context.Context, in dto.LoginDTO) (dto.BackendAuthResponse, error)
	Register(ctx context.Context, in dto.RegisterDTO) (dto.BackendAuthResponse, error)
}

type ContractBackend interface {
	PriceTemplate(ctx context.Context, sess *session.Session) ([]byte, error)
	UploadPrices(ctx context.Context, sess *session.Session, contractID int64, filename string, content io.Reader) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}
