package api

import (
	"context"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
)

// AuthUseCase - регистрация, вход и проверка учетных данных.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)

	Login(ctx context.Context, email, password string) (*services.AuthResult, error)

	// Authenticate проверяет токен и разрешает его в существующего пользователя.
	Authenticate(ctx context.Context, token string) (*services.Identity, error)

	Logout(ctx context.Context, identity *services.Identity) error

	Profile(ctx context.Context, userID string) (*entities.User, error)
}
