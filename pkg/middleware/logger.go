// pkg/middleware/logger.go

package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/pkg/contextkeys"
)

// InjectLogger кладет в контекст логгер с request id и пишет строку на каждый запрос.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLogger := logger.With(zap.String("request_id", reqID))
			c.Set("logger", reqLogger)
			if reqID != "" {
				c.SetRequest(c.Request().WithContext(
					context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, reqID),
				))
			}

			start := time.Now()
			err := next(c)

			reqLogger.Debug("HTTP запрос",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
