// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tire-service/internal/integrations/backend"
	"tire-service/internal/repositories"
	"tire-service/internal/routes"
	"tire-service/pkg/api"
	"tire-service/pkg/config"
	"tire-service/pkg/customvalidator"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/eventbus"
	applogger "tire-service/pkg/logger"
	appmiddleware "tire-service/pkg/middleware"
	"tire-service/pkg/utils"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.Path)
	defer func() { _ = logger.Sync() }()

	// Суммы уходят в JSON числами, как их ждет фронтенд и бэкенд.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				_ = api.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err))
			}
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.InjectLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	// 3. Валидатор
	v := customvalidator.New()
	e.Validator = utils.NewValidator(v)

	// 4. Кеш: Redis, если включен, иначе память процесса
	var cache repositories.CacheRepositoryInterface
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cache = repositories.NewRedisCacheRepository(redisClient)
	} else {
		logger.Warn("Redis отключен, черновики и кеш живут в памяти процесса")
		cache = repositories.NewMemoryCacheRepository()
	}

	// 5. Бэкенд, шина событий, роуты
	loggers := &routes.Loggers{
		Main:    logger,
		Auth:    logger.Named("auth"),
		Order:   logger.Named("orders"),
		Backend: logger.Named("backend"),
	}
	backendClient := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, loggers.Backend)
	bus := eventbus.New(logger)

	routes.InitRouter(e, backendClient, cache, bus, v, loggers, cfg)

	// 6. Запуск и корректная остановка
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("backend", backendClient.Name()), zap.String("backend_url", cfg.Backend.BaseURL))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}
