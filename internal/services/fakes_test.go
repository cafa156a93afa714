package services

import (
	"context"
	"net/url"
	"sync"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/eventbus"
	"tire-service/pkg/session"
)

// fakeBackend - бэкенд в памяти для тестов сервисов.
type fakeBackend struct {
	mu            sync.Mutex
	prices        map[int64][]entities.Service
	clients       map[int64]entities.Client
	created       []dto.CreateOrderDTO
	priceCalls    int
	statsCalls    int
	createOrderID int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		prices: map[int64][]entities.Service{
			10: {
				{ID: 1, Name: "Снятие колеса (спарка)", Price: decimal.NewFromInt(500), ContractID: 10},
				{ID: 2, Name: "Балансировка колеса", Price: decimal.NewFromInt(300), ContractID: 10},
				{ID: 3, Name: "Снятие колеса (одиночка)", Price: decimal.NewFromInt(400), ContractID: 10},
			},
			20: {
				{ID: 1, Name: "Снятие колеса (спарка)", Price: decimal.NewFromInt(450), ContractID: 20},
				{ID: 2, Name: "Балансировка колеса", Price: decimal.NewFromInt(250), ContractID: 20},
			},
		},
		clients: map[int64]entities.Client{
			1: {ID: 1, Name: "Частное лицо"},
			5: {ID: 5, Name: "ООО Грузовик", ContractID: null.Int64From(20)},
			6: {ID: 6, Name: "ИП Без договора"},
		},
		createOrderID: 100,
	}
}

func (f *fakeBackend) ListContractServices(_ context.Context, _ *session.Session, contractID int64) ([]entities.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.priceCalls++
	return append([]entities.Service(nil), f.prices[contractID]...), nil
}

func (f *fakeBackend) ListClients(context.Context, *session.Session) ([]entities.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeBackend) ListWorkers(context.Context, *session.Session) ([]entities.Worker, error) {
	return []entities.Worker{{ID: 7, FullName: "Иванов И.И.", IsActive: true}}, nil
}

func (f *fakeBackend) GetClient(_ context.Context, _ *session.Session, id int64) (entities.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[id]
	if !ok {
		return entities.Client{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (f *fakeBackend) CreateOrder(_ context.Context, _ *session.Session, in dto.CreateOrderDTO) (entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return entities.Order{ID: f.createOrderID, ClientID: in.ClientID, TotalAmount: in.TotalAmount, Status: "new"}, nil
}

func (f *fakeBackend) ListManagerOrders(context.Context, *session.Session, url.Values) ([]entities.Order, error) {
	return []entities.Order{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeBackend) ListWorkerOrders(context.Context, *session.Session, url.Values) ([]entities.Order, error) {
	return []entities.Order{{ID: 2}}, nil
}

func (f *fakeBackend) ManagerStatistics(context.Context, *session.Session, url.Values) (entities.Statistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	return entities.Statistics{OrdersCount: int64(f.statsCalls), Revenue: decimal.NewFromInt(1000)}, nil
}

func (f *fakeBackend) WorkerStatistics(context.Context, *session.Session, url.Values) (entities.Statistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	return entities.Statistics{OrdersCount: 1}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}
