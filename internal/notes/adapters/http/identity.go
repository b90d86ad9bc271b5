package http

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonote/internal/notes/adapters/http/middleware"
	"gonote/internal/notes/domain/services"
)

func identify(c fiber.Ctx) (context.Context, *services.Identity, error) {
	ctx := middleware.RequestContext(c)
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, nil, errNoIdentity
	}
	return ctx, identity, nil
}

func requestContext(c fiber.Ctx) context.Context {
	return middleware.RequestContext(c)
}
