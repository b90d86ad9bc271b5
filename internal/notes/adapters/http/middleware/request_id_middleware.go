package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gonote/pkg/logger"
)

// NewRequestIDMiddleware назначает запросу идентификатор и кладет его вместе с логгером в контекст.
func NewRequestIDMiddleware(base *logger.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := logger.NormalizeRequestID(c.Get(HeaderRequestID))

		ctx := logger.NewRequestIDContext(c.Context(), requestID)
		ctx = logger.NewContext(ctx, base)
		setRequestContext(c, ctx)

		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}
