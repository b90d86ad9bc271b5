package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonote/internal/notes/domain/services"
	"gonote/internal/notes/ports/api"
	"gonote/pkg/logger"
)

const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"

	bearerPrefix = "Bearer "
)

// NewAuthMiddleware проверяет bearer токен и кладет пользователя в контекст запроса.
// При любой ошибке запрос завершается 401 и дальше не передается.
func NewAuthMiddleware(auth api.AuthUseCase) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := RequestContext(c)
		log := logger.Log(ctx).With(zap.String("middleware", "auth"))

		header := c.Get(fiber.HeaderAuthorization)
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			log.Debug(ctx, "missing bearer token")
			return fiber.NewError(fiber.StatusUnauthorized, MsgNoToken)
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, MsgNoToken)
		}

		identity, err := auth.Authenticate(ctx, token)
		if err != nil {
			if isCredentialError(err) {
				log.Debug(ctx, "token rejected", zap.Error(err))
				return fiber.NewError(fiber.StatusUnauthorized, MsgTokenFailed)
			}
			log.Error(ctx, "authentication failed", zap.Error(err))
			return err
		}

		ctx = WithIdentity(ctx, identity)
		ctx = logger.NewContext(ctx, logger.Log(ctx).With(zap.String("user_id", identity.UserID)))
		setRequestContext(c, ctx)

		return c.Next()
	}
}

func isCredentialError(err error) bool {
	return errors.Is(err, services.ErrInvalidToken) ||
		errors.Is(err, services.ErrExpiredToken) ||
		errors.Is(err, services.ErrRevokedToken)
}
