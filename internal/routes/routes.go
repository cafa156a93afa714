package routes

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/controllers"
	"tire-service/internal/integrations/backend"
	"tire-service/internal/listeners"
	"tire-service/internal/repositories"
	"tire-service/internal/services"
	"tire-service/pkg/config"
	"tire-service/pkg/eventbus"
	"tire-service/pkg/middleware"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Order   *zap.Logger
	Backend *zap.Logger
}

// NopLoggers - все логгеры-заглушки (тесты).
func NopLoggers() *Loggers {
	nop := zap.NewNop()
	return &Loggers{Main: nop, Auth: nop, Order: nop, Backend: nop}
}

func InitRouter(
	e *echo.Echo,
	backendClient *backend.Client,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	validate *validator.Validate,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(loggers.Auth)

	// --- 1. РЕПОЗИТОРИИ ---
	draftRepo := repositories.NewDraftRepository(cache, cfg.Cache.DraftTTL)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(backendClient, loggers.Auth)
	catalogService := services.NewCatalogService(backendClient, cache, cfg.Cache.CatalogueTTL, loggers.Order)
	referenceService := services.NewReferenceService(backendClient, loggers.Order)
	orderService := services.NewOrderService(backendClient, loggers.Order)
	draftService := services.NewDraftService(
		draftRepo, catalogService, backendClient, backendClient, bus, validate, cfg.Orders, loggers.Order,
	)
	statisticsService := services.NewStatisticsService(backendClient, cache, cfg.Cache.StatisticsTTL, loggers.Main)
	priceSheetService := services.NewPriceSheetService(backendClient, catalogService, loggers.Main)

	// --- 3. СЛУШАТЕЛИ ---
	listeners.NewStatisticsListener(statisticsService, loggers.Main).Register(bus)

	// --- 4. КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, loggers.Auth)
	draftController := controllers.NewDraftController(draftService, catalogService, loggers.Order)
	orderController := controllers.NewOrderController(orderService, referenceService, loggers.Order)
	positionController := controllers.NewPositionController(loggers.Main)
	contractController := controllers.NewContractController(catalogService, priceSheetService, loggers.Main)
	statisticsController := controllers.NewStatisticsController(statisticsService, loggers.Main)

	// --- 5. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runPositionRouter(secureGroup, positionController)
	runDraftRouter(secureGroup, draftController, authMW)
	runOrderRouter(secureGroup, orderController)
	runContractRouter(secureGroup, contractController, authMW)
	runStatisticsRouter(secureGroup, statisticsController)
	runDirectoryRouter(secureGroup, backendClient, func(ctx context.Context) {
		catalogService.Invalidate(ctx, 0)
	}, loggers.Main, authMW)

	loggers.Main.Info("InitRouter: Маршруты созданы")
}
