package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"gonote/pkg/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(context.Background(), redis.Config{
		Host:     mr.Host(),
		Port:     port,
		PoolSize: 2,
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	return client, mr
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	require.NoError(t, client.Ping(ctx))

	require.NoError(t, client.SetWithTTL(ctx, "k", "v", time.Minute))

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	val, found, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", val)

	mr.FastForward(2 * time.Minute)

	exists, err = client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	_, found, err = client.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host := mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	client, err := redis.NewClient(context.Background(), redis.Config{
		Host:    host,
		Port:    port,
		Timeout: 200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Nil(t, client)
}
