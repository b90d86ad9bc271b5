// Package services defines outbound service interfaces for the notes service.
package services

import (
	"context"
	"time"

	"gonote/internal/notes/domain/services"
)

// TokenService выпускает и проверяет токены доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (*services.TokenClaims, error)
}

// TokenBlacklist хранит отозванные токены до их истечения.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
