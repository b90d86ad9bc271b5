package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonote/pkg/logger"
)

const (
	statusOK       = "ok"
	statusDegraded = "unavailable"
)

// Pinger - зависимость, доступность которой проверяет /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse - ответ GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler опрашивает зависимости сервиса.
type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
}

// NewHealthHandler создает обработчик; checks - имя зависимости -> проверка.
func NewHealthHandler(checks map[string]Pinger, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{checks: checks, timeout: timeout}
}

// Health отвечает 200, если все зависимости доступны, иначе 503.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(requestContext(c), h.timeout)
	defer cancel()

	resp := HealthResponse{Status: statusOK, Checks: make(map[string]string, len(h.checks))}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			logger.Log(ctx).Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = statusDegraded
			resp.Status = statusDegraded
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := fiber.StatusOK
	if resp.Status != statusOK {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(resp)
}
