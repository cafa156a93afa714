// Файл: internal/services/draft_service.go

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/internal/events"
	"tire-service/internal/pricing"
	"tire-service/internal/repositories"
	"tire-service/pkg/config"
	"tire-service/pkg/customvalidator"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
	"tire-service/pkg/utils"
)

type DraftServiceInterface interface {
	Create(ctx context.Context, sess *session.Session, in dto.CreateDraftDTO) (*dto.DraftDTO, error)
	Get(ctx context.Context, sess *session.Session, id string) (*dto.DraftDTO, error)
	Update(ctx context.Context, sess *session.Session, id string, in dto.UpdateDraftDTO) (*dto.DraftDTO, error)
	ToggleService(ctx context.Context, sess *session.Session, id string, in dto.ToggleServiceDTO) (*dto.DraftDTO, error)
	Submit(ctx context.Context, sess *session.Session, id string) (*entities.Order, error)
	Discard(ctx context.Context, sess *session.Session, id string) error
}

type DraftService struct {
	repo      repositories.DraftRepositoryInterface
	catalog   *CatalogService
	clients   ReferenceBackend
	orders    OrderBackend
	publisher EventPublisher
	validate  *validator.Validate
	defaults  config.OrdersConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewDraftService(
	repo repositories.DraftRepositoryInterface,
	catalog *CatalogService,
	clients ReferenceBackend,
	orders OrderBackend,
	publisher EventPublisher,
	validate *validator.Validate,
	defaults config.OrdersConfig,
	logger *zap.Logger,
) *DraftService {
	return &DraftService{
		repo:      repo,
		catalog:   catalog,
		clients:   clients,
		orders:    orders,
		publisher: publisher,
		validate:  validate,
		defaults:  defaults,
		logger:    logger.Named("draft_service"),
		now:       time.Now,
	}
}

func (s *DraftService) Create(ctx context.Context, sess *session.Session, in dto.CreateDraftDTO) (*dto.DraftDTO, error) {
	truck, err := pricing.ParseTruckType(in.TruckType)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Неизвестный тип грузовика", err)
	}

	now := s.now()
	draft := &entities.OrderDraft{
		ID:            uuid.NewString(),
		Owner:         sess.Subject(),
		TruckType:     string(truck),
		PaymentMethod: in.PaymentMethod,
		ServiceIDs:    []int64{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if draft.PaymentMethod == "" {
		draft.PaymentMethod = entities.PaymentCash
	}
	draft.ClientID = utils.SafeDeref(in.ClientID)
	draft.WorkerID = utils.SafeDeref(in.WorkerID)
	draft.VehicleNumber = customvalidator.NormalizeVehicleNumber(utils.SafeDeref(in.VehicleNumber))

	if err := s.resolveCounterparty(ctx, sess, draft); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Info("Создан черновик заказа",
		zap.String("draft_id", draft.ID),
		zap.String("owner", draft.Owner),
		zap.String("truck_type", draft.TruckType),
	)
	return s.view(ctx, sess, draft)
}

func (s *DraftService) Get(ctx context.Context, sess *session.Session, id string) (*dto.DraftDTO, error) {
	draft, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sess, draft)
}

// Update применяет только переданные поля. Смена типа грузовика сбрасывает
// позицию, которой у нового типа нет; смена оплаты или клиента заново
// определяет договор, а с ним и прайс. При смене позиции выбранный
// монтаж/демонтаж заменяется вариантом под новый тип колеса.
func (s *DraftService) Update(ctx context.Context, sess *session.Session, id string, in dto.UpdateDraftDTO) (*dto.DraftDTO, error) {
	draft, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	counterpartyChanged := false
	prevPosition := draft.WheelPosition

	if in.TruckType != nil {
		truck, err := pricing.ParseTruckType(*in.TruckType)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Неизвестный тип грузовика", err)
		}
		draft.TruckType = string(truck)
		if pos, err := pricing.ParsePosition(draft.WheelPosition); draft.WheelPosition != "" && (err != nil || !pos.ValidFor(truck)) {
			s.logger.Debug("Позиция сброшена после смены типа грузовика",
				zap.String("draft_id", draft.ID),
				zap.String("position", draft.WheelPosition),
			)
			draft.WheelPosition = ""
		}
	}

	if in.WheelPosition != nil {
		key, err := s.checkPosition(draft.TruckType, *in.WheelPosition)
		if err != nil {
			return nil, err
		}
		draft.WheelPosition = key
	}

	if in.PaymentMethod != nil && *in.PaymentMethod != draft.PaymentMethod {
		if in.PaymentMethod.RequiresClient() && draft.ClientID == s.defaults.WalkInClientID {
			draft.ClientID = 0
		}
		draft.PaymentMethod = *in.PaymentMethod
		counterpartyChanged = true
	}
	if in.ClientID != nil && *in.ClientID != draft.ClientID {
		draft.ClientID = *in.ClientID
		counterpartyChanged = true
	}
	if in.WorkerID != nil {
		draft.WorkerID = *in.WorkerID
	}
	if in.VehicleNumber != nil {
		draft.VehicleNumber = customvalidator.NormalizeVehicleNumber(*in.VehicleNumber)
	}
	if in.ServiceIDs != nil {
		draft.ServiceIDs = normalizeIDs(*in.ServiceIDs)
	}
	if in.Comment != nil {
		draft.Comment = strings.TrimSpace(*in.Comment)
	}

	if counterpartyChanged {
		if err := s.resolveCounterparty(ctx, sess, draft); err != nil {
			return nil, err
		}
	}
	if in.ServiceIDs == nil && draft.WheelPosition != prevPosition {
		if err := s.swapVariants(ctx, sess, draft); err != nil {
			return nil, err
		}
	}

	draft.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(ctx, sess, draft)
}

func (s *DraftService) ToggleService(ctx context.Context, sess *session.Session, id string, in dto.ToggleServiceDTO) (*dto.DraftDTO, error) {
	draft, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(draft.ServiceIDs)+1)
	for _, existing := range draft.ServiceIDs {
		if existing != in.ServiceID {
			ids = append(ids, existing)
		}
	}
	if in.Selected {
		ids = append(ids, in.ServiceID)
	}
	draft.ServiceIDs = normalizeIDs(ids)
	draft.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(ctx, sess, draft)
}

// Submit создает заказ в бэкенде. Черновик с услугами без цены или вне
// прайса не отправляется: сумма заказа должна совпадать с расчетом.
func (s *DraftService) Submit(ctx context.Context, sess *session.Session, id string) (*entities.Order, error) {
	draft, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if draft.PaymentMethod.RequiresClient() && draft.ClientID == 0 {
		return nil, apperrors.NewInvalidInputError("Для безналичного расчета выберите клиента")
	}
	if draft.WheelPosition == "" {
		return nil, apperrors.NewInvalidInputError("Не выбрана позиция колеса")
	}

	pos, err := pricing.ParsePosition(draft.WheelPosition)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Некорректная позиция колеса", err)
	}
	quote, err := s.quote(ctx, sess, draft, pos)
	if err != nil {
		return nil, err
	}
	if !quote.Complete() {
		return nil, apperrors.NewHttpError(
			http.StatusUnprocessableEntity,
			"В заказе есть услуги без цены для выбранной позиции",
			nil,
		).WithDetails(map[string][]int64{
			"missing":  quote.Missing,
			"unpriced": quote.Unpriced,
		})
	}

	payload := dto.CreateOrderDTO{
		ClientID:      draft.ClientID,
		WorkerID:      draft.WorkerID,
		ContractID:    draft.ContractID,
		VehicleNumber: draft.VehicleNumber,
		PaymentMethod: draft.PaymentMethod,
		TruckType:     draft.TruckType,
		WheelPosition: draft.WheelPosition,
		Services:      make([]dto.OrderServiceDTO, 0, len(quote.Lines)),
		TotalAmount:   quote.Total,
	}
	for _, line := range quote.Lines {
		payload.Services = append(payload.Services, dto.OrderServiceDTO{
			ServiceID:     line.ServiceID,
			Price:         line.Price,
			WheelPosition: quote.Position,
		})
	}
	if draft.Comment != "" {
		payload.Comment = utils.ToPtr(draft.Comment)
	}

	if err := s.validate.StructCtx(ctx, payload); err != nil {
		return nil, apperrors.NewBadRequestError("Черновик заполнен не полностью", err)
	}

	order, err := s.orders.CreateOrder(ctx, sess, payload)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать заказ: %w", err)
	}

	s.logger.Info("Заказ создан из черновика",
		zap.String("draft_id", draft.ID),
		zap.Int64("order_id", order.ID),
		zap.String("total", quote.Total.StringFixed(2)),
	)

	s.publisher.Publish(ctx, events.OrderSubmittedEvent{
		OrderID:     order.ID,
		DraftID:     draft.ID,
		ClientID:    draft.ClientID,
		WorkerID:    draft.WorkerID,
		TotalAmount: quote.Total,
	})

	if err := s.repo.Delete(ctx, draft.ID); err != nil {
		s.logger.Warn("Не удалось удалить отправленный черновик", zap.String("draft_id", draft.ID), zap.Error(err))
	}
	return &order, nil
}

func (s *DraftService) Discard(ctx context.Context, sess *session.Session, id string) error {
	if _, err := s.load(ctx, sess, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// load возвращает черновик только его автору. Чужой черновик выглядит как отсутствующий.
func (s *DraftService) load(ctx context.Context, sess *session.Session, id string) (*entities.OrderDraft, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrNotFound
	}
	draft, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Owner != sess.Subject() {
		return nil, apperrors.ErrNotFound
	}
	return draft, nil
}

// swapVariants подбирает монтаж/демонтаж под тип колеса текущей позиции.
// Явно переданный список услуг не трогается: его выбрал менеджер.
func (s *DraftService) swapVariants(ctx context.Context, sess *session.Session, draft *entities.OrderDraft) error {
	if draft.WheelPosition == "" || draft.ContractID == 0 || len(draft.ServiceIDs) == 0 {
		return nil
	}
	pos, err := pricing.ParsePosition(draft.WheelPosition)
	if err != nil {
		return nil
	}
	catalogue, err := s.catalog.Catalogue(ctx, sess, draft.ContractID)
	if err != nil {
		return err
	}

	ids, changed := catalogue.SwapVariants(draft.ServiceIDs, pos.WheelType())
	if changed {
		s.logger.Debug("Услуги заменены под тип колеса",
			zap.String("draft_id", draft.ID),
			zap.String("position", draft.WheelPosition),
			zap.Int64s("from", draft.ServiceIDs),
			zap.Int64s("to", ids),
		)
		draft.ServiceIDs = ids
	}
	return nil
}

func (s *DraftService) checkPosition(truckType, key string) (string, error) {
	pos, err := pricing.ParsePosition(key)
	if err != nil {
		return "", apperrors.NewBadRequestError("Некорректная позиция колеса", err)
	}
	if pos.IsZero() {
		return "", nil
	}
	if !pos.ValidFor(pricing.TruckType(truckType)) {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("Позиция %q недоступна для этого типа грузовика", key),
			pricing.ErrPositionMismatch,
		)
	}
	return pos.String(), nil
}

// resolveCounterparty определяет клиента и договор по способу оплаты.
// Наличные и карта: клиент по умолчанию - частное лицо, цены по розничному договору.
// Перечисление: договор берется у выбранного клиента.
func (s *DraftService) resolveCounterparty(ctx context.Context, sess *session.Session, draft *entities.OrderDraft) error {
	if !draft.PaymentMethod.RequiresClient() {
		if draft.ClientID == 0 {
			draft.ClientID = s.defaults.WalkInClientID
		}
		draft.ContractID = s.defaults.RetailContractID
		return nil
	}

	draft.ContractID = 0
	if draft.ClientID == 0 {
		return nil
	}

	client, err := s.clients.GetClient(ctx, sess, draft.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewInvalidInputError("Клиент %d не найден", draft.ClientID)
		}
		return fmt.Errorf("не удалось получить клиента %d: %w", draft.ClientID, err)
	}
	if !client.ContractID.Valid || client.ContractID.Int64 == 0 {
		return apperrors.NewInvalidInputError("У клиента «%s» нет договора для безналичного расчета", client.Name)
	}
	draft.ContractID = client.ContractID.Int64
	return nil
}

func (s *DraftService) quote(ctx context.Context, sess *session.Session, draft *entities.OrderDraft, pos pricing.WheelPosition) (pricing.Quote, error) {
	var catalogue *pricing.Catalogue
	if draft.ContractID != 0 {
		var err error
		catalogue, err = s.catalog.Catalogue(ctx, sess, draft.ContractID)
		if err != nil {
			return pricing.Quote{}, err
		}
	}
	q := pricing.BuildQuote(catalogue, draft.ServiceIDs, pos)
	s.catalog.warnIncomplete(q, draft.ContractID)
	return q, nil
}

func (s *DraftService) view(ctx context.Context, sess *session.Session, draft *entities.OrderDraft) (*dto.DraftDTO, error) {
	pos, err := pricing.ParsePosition(draft.WheelPosition)
	if err != nil {
		pos = pricing.WheelPosition{}
	}
	quote, err := s.quote(ctx, sess, draft, pos)
	if err != nil {
		return nil, err
	}

	positions := pricing.Positions(pricing.TruckType(draft.TruckType))
	out := &dto.DraftDTO{
		ID:            draft.ID,
		TruckType:     draft.TruckType,
		WheelPosition: draft.WheelPosition,
		PaymentMethod: draft.PaymentMethod,
		ClientID:      draft.ClientID,
		ContractID:    draft.ContractID,
		WorkerID:      draft.WorkerID,
		VehicleNumber: draft.VehicleNumber,
		ServiceIDs:    draft.ServiceIDs,
		Comment:       draft.Comment,
		Positions:     ToPositionDTOs(positions),
		Quote:         quote,
		UpdatedAt:     draft.UpdatedAt,
	}
	return out, nil
}

func ToPositionDTOs(positions []pricing.WheelPosition) []dto.PositionDTO {
	out := make([]dto.PositionDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, dto.PositionDTO{Key: p.String(), Label: p.Label(), WheelType: p.WheelType()})
	}
	return out
}

func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
