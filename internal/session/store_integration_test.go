package session

import (
	"context"
	"testing"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/config"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStoreIntegration(t *testing.T) {
	ctx := context.Background()

	addr, cleanup := setupRedis(t)
	t.Cleanup(cleanup)

	store, err := NewStore(ctx, zap.NewNop().Sugar(), &config.Config{
		Redis:   config.RedisConfig{Addr: addr},
		Session: config.SessionConfig{TTL: time.Minute},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	token, err := store.Create(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)

	_, err = store.Resolve(ctx, "unknown-token")
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Resolve(ctx, token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	// destroying an unknown token is a no-op
	require.NoError(t, store.Destroy(ctx, "unknown-token"))
}

func setupRedis(t *testing.T) (string, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	addr := "localhost:" + resource.GetPort("6379/tcp")

	require.NoError(t, pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer func() { _ = client.Close() }()
		return client.Ping(context.Background()).Err()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return addr, cleanup
}
