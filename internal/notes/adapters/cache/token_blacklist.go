// Package cache хранит отозванные токены доступа в Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gonote/internal/notes/ports/services"
	"gonote/pkg/logger"
)

const keyPrefix = "notes:revoked:"

const (
	errRevoke    = "failed to revoke token"
	errIsRevoked = "failed to check token revocation"
)

// Store - операции Redis, нужные черному списку.
type Store interface {
	SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TokenBlacklist реализует services.TokenBlacklist.
type TokenBlacklist struct {
	store Store
}

// NewTokenBlacklist создает черный список поверх store.
func NewTokenBlacklist(store Store) services.TokenBlacklist {
	return &TokenBlacklist{store: store}
}

// Revoke помечает токен отозванным на ttl. Неположительный ttl означает, что токен уже истек.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", "Revoke"), zap.String("token_id", tokenID))

	if ttl <= 0 {
		log.Debug(ctx, "token already expired, nothing to revoke")
		return nil
	}

	if err := b.store.SetWithTTL(ctx, keyPrefix+tokenID, 1, ttl); err != nil {
		log.Error(ctx, errRevoke, zap.Error(err))
		return fmt.Errorf("%s: %w", errRevoke, err)
	}

	log.Debug(ctx, "token revoked", zap.Duration("ttl", ttl))
	return nil
}

// IsRevoked сообщает, был ли токен отозван через Revoke и еще не истек.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := b.store.Exists(ctx, keyPrefix+tokenID)
	if err != nil {
		logger.Log(ctx).Error(ctx, errIsRevoked, zap.String("token_id", tokenID), zap.Error(err))
		return false, fmt.Errorf("%s: %w", errIsRevoked, err)
	}
	return revoked, nil
}
