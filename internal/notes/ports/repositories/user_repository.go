package repositories

import (
	"context"

	"gonote/internal/notes/domain/entities"
)

// UserRepository определяет интерфейс хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
