package cache_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"gonote/internal/notes/adapters/cache"
	"gonote/pkg/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlacklist(t *testing.T) (*miniredis.Miniredis, *cache.TokenBlacklist) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(context.Background(), redis.Config{Host: mr.Host(), Port: port, Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	bl, ok := cache.NewTokenBlacklist(client).(*cache.TokenBlacklist)
	require.True(t, ok)
	return mr, bl
}

func TestTokenBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked until expiry", func(t *testing.T) {
		mr, bl := newBlacklist(t)

		revoked, err := bl.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)

		require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))

		revoked, err = bl.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.True(t, mr.Exists("notes:revoked:jti-1"))

		mr.FastForward(time.Minute + time.Second)

		revoked, err = bl.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("expired token is not stored", func(t *testing.T) {
		mr, bl := newBlacklist(t)

		require.NoError(t, bl.Revoke(ctx, "jti-2", -time.Second))
		assert.False(t, mr.Exists("notes:revoked:jti-2"))
	})

	t.Run("redis unavailable", func(t *testing.T) {
		mr, bl := newBlacklist(t)
		mr.Close()

		_, err := bl.IsRevoked(ctx, "jti-3")
		require.Error(t, err)

		require.Error(t, bl.Revoke(ctx, "jti-3", time.Minute))
	})
}
