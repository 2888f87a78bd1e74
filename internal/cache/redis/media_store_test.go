package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/synexis/internal/cache/redis"
)

func unreachableClient(t *testing.T) *goredis.Client {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestMediaBackend_Unreachable(t *testing.T) {
	t.Run("should report lookup failures as errors, not misses", func(t *testing.T) {
		backend := redis.NewMediaBackend(unreachableClient(t), "media:")

		data, ok, err := backend.Get(context.Background(), "/tmp/cat.png")

		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, data)
		require.Contains(t, err.Error(), "/tmp/cat.png")
	})

	t.Run("should report store failures", func(t *testing.T) {
		backend := redis.NewMediaBackend(unreachableClient(t), "media:")

		err := backend.Set(context.Background(), "/tmp/cat.png", []byte{1, 2, 3})

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to store media")
	})
}

func TestNewClient(t *testing.T) {
	t.Run("should fail when redis is unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := redis.NewClient(ctx, redis.Config{Addr: "127.0.0.1:1"})

		require.Error(t, err)
		require.Nil(t, client)
		require.Contains(t, err.Error(), "127.0.0.1:1")
	})
}
