package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonote/pkg/logger"
)

// NewLoggerMiddleware пишет строку журнала на каждый запрос.
func NewLoggerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ctx := RequestContext(c)
		status := c.Response().StatusCode()
		if err != nil {
			// ErrorHandler еще не отработал, код берем из ошибки
			status = StatusFromError(err)
		}

		fields := []zap.Field{
			zap.String("http_method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		log := logger.Log(ctx)
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error(ctx, "request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			log.Warn(ctx, "request rejected", fields...)
		default:
			log.Info(ctx, "request completed", fields...)
		}

		return err
	}
}
