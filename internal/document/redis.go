package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"retrospace/internal/models"
	"retrospace/internal/observability"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists documents as plain Redis string values.
type RedisStore struct {
	client *redis.Client
}

// OpenRedisStore connects to Redis at addr (host:port or a redis:// URL) and
// verifies the connection with a short ping.
func OpenRedisStore(addr string) (*RedisStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStore wraps an existing client. Used by tests running against
// miniredis.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Read returns the document bytes, or nil when the key is absent.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		observability.StoreErrors.WithLabelValues("redis", "read").Inc()
		return nil, models.NewInternalError(err)
	}
	return data, nil
}

// Write replaces the document with no expiry; collections live forever.
func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		observability.StoreErrors.WithLabelValues("redis", "write").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the document; deleting an absent key succeeds silently.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		observability.StoreErrors.WithLabelValues("redis", "delete").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// Close releases the client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
