package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/synexis/internal/observability"
)

// Config contains Redis connection settings for the media cache.
type Config struct {
	Addr     string `env:"REDIS_ADDR"         envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"           envDefault:"0"`
	Prefix   string `env:"MEDIA_REDIS_PREFIX" envDefault:"media:"`
}

// NewClient creates a Redis client and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// MediaBackend stores resolved media bytes in Redis.
// Keys never expire; the cache lives as long as the Redis instance.
type MediaBackend struct {
	client *redis.Client
	prefix string
}

// NewMediaBackend creates a Redis media backend.
func NewMediaBackend(client *redis.Client, prefix string) *MediaBackend {
	return &MediaBackend{
		client: client,
		prefix: prefix,
	}
}

// Get returns the cached bytes for path.
func (b *MediaBackend) Get(ctx context.Context, path string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get media %s: %w", path, err)
	}

	return data, true, nil
}

// Set stores data under path. An existing entry is left untouched.
func (b *MediaBackend) Set(ctx context.Context, path string, data []byte) error {
	stored, err := b.client.SetNX(ctx, b.key(path), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to store media %s: %w", path, err)
	}

	observability.FromContext(ctx).Debug("media cached in redis",
		observability.String("key", b.key(path)),
		observability.Bool("stored", stored),
		observability.Int("size", len(data)))

	return nil
}

// Close closes the underlying client.
func (b *MediaBackend) Close() error {
	return b.client.Close()
}

func (b *MediaBackend) key(path string) string {
	return b.prefix + path
}
