package kvstore

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook/internal/redis"
)

// RedisConfig contains configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix namespaces every key, e.g. "spellbook:"
	KeyPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// RedisStore stores values as plain Redis strings
type RedisStore struct {
	client redisclient.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedis creates a Redis-backed store
func NewRedis(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RedisStore{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

// Get returns the value of a Redis string key
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkContext(ctx, "redis", "get"); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("key %s not found", key)
		}
		slog.ErrorContext(ctx, "failed to get key from Redis",
			"key", key,
			"error", err.Error())
		return nil, unavailable(err, "failed to get key")
	}
	return result, nil
}

// Set writes a Redis string key without expiry
func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return unavailable(err, "failed to set key")
	}
	return nil
}

// Delete removes keys with a single DEL
func (r *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = r.key(k)
	}
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return unavailable(err, "failed to delete keys")
	}
	return nil
}

// Apply queues the batch in a MULTI/EXEC transaction
func (r *RedisStore) Apply(ctx context.Context, ops []Op) error {
	if err := checkContext(ctx, "redis", "apply"); err != nil {
		return err
	}
	if err := validateOps(ops); err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			pipe.Set(ctx, r.key(op.Key), op.Value, 0)
		case OpDelete:
			pipe.Del(ctx, r.key(op.Key))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to execute Redis transaction",
			"ops", len(ops),
			"error", err.Error())
		return unavailable(err, "failed to apply batch")
	}
	return nil
}

// Close closes the underlying client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
