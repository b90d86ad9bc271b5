// Package middleware содержит промежуточное ПО HTTP сервера заметок.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonote/internal/notes/domain/services"
)

// UserContextKey - ключ fiber Locals, под которым лежит context.Context запроса.
const UserContextKey = "userContext"

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

type identityKeyType struct{}

var identityKey = identityKeyType{}

// RequestContext возвращает context.Context, собранный middleware, или контекст fiber.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(UserContextKey).(context.Context); ok && ctx != nil {
		return ctx
	}
	return c.Context()
}

func setRequestContext(c fiber.Ctx, ctx context.Context) {
	c.Locals(UserContextKey, ctx)
}

// WithIdentity кладет проверенного пользователя в контекст.
func WithIdentity(ctx context.Context, identity *services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext достает пользователя, установленного NewAuthMiddleware.
func IdentityFromContext(ctx context.Context) (*services.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*services.Identity)
	return identity, ok && identity != nil
}
