// Package redis wraps go-redis client construction so stores depend on a
// small interface that miniredis-backed tests can satisfy.
package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

const (
	defaultDialTimeout = 2 * time.Second
	defaultMaxRetries  = 1
)

// Options configures the client. Zero DialTimeout and MaxRetries use short
// defaults so a CLI command against a dead server fails quickly.
type Options struct {
	Password    string
	DB          int
	DialTimeout time.Duration
	MaxRetries  int
}

// NewClient creates a client for a single Redis instance. Redis connects
// lazily, so an unreachable server surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.DB < 0 {
		return nil, errors.InvalidArgumentf("redis: db %d cannot be negative", opts.DB)
	}

	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	maxRetries := opts.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
		MaxRetries:  maxRetries,
	}), nil
}
