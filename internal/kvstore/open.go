package kvstore

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/spellbook/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook/internal/redis"
)

// Options selects and configures a backend for Open
type Options struct {
	Backend Backend

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	BoltPath   string
	SQLitePath string
}

// Open creates the configured store. Redis is pinged so an unreachable
// server fails here instead of on the first read.
func Open(ctx context.Context, opts *Options) (Store, error) {
	if opts == nil {
		return nil, errors.InvalidArgument("store options cannot be nil")
	}

	slog.DebugContext(ctx, "opening store", "backend", opts.Backend)

	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendBolt:
		store, err := OpenBolt(opts.BoltPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendRedis:
		client, err := redisclient.NewClient(opts.RedisAddr, &redisclient.Options{
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis").
				WithMeta("redis_addr", opts.RedisAddr)
		}
		store, err := NewRedis(&RedisConfig{Client: client, KeyPrefix: opts.RedisKeyPrefix})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.InvalidArgumentf("unknown store backend %q", opts.Backend)
	}
}
