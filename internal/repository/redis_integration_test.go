//go:build integration

// internal/repository/redis_integration_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_4_word_learn/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisDialogStore(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	pool.MaxWait = 60 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	var rdb *goredis.Client
	require.NoError(t, pool.Retry(func() error {
		rdb = goredis.NewClient(&goredis.Options{Addr: resource.GetHostPort("6379/tcp")})
		return rdb.Ping(context.Background()).Err()
	}))
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewRedisDialogStore(rdb, time.Hour)
	testDialogStore(t, store)

	t.Run("正常系: TTL が設定される", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, &model.AddWordsDialog{ChatID: 99, State: model.DialogChoosing}))
		ttl, err := rdb.TTL(ctx, dialogKey(99)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})
}
