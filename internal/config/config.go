// Package config loads runtime settings from the environment and an
// optional .env file
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
)

// Log levels accepted by LOG_LEVEL
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// maxRedisDB is the highest database index of a default Redis server
const maxRedisDB = 15

// Config holds the application configuration
type Config struct {
	Store string `env:"SPELLBOOK_STORE" envDefault:"bolt"`

	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"spellbook:"`

	BoltPath   string `env:"SPELLBOOK_BOLT_PATH" envDefault:"spellbook.db"`
	SQLitePath string `env:"SPELLBOOK_SQLITE_PATH" envDefault:"spellbook.sqlite"`

	CatalogPath string `env:"SPELLBOOK_CATALOG" envDefault:"spells.json"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the process environment. Values from envFile fill in
// variables the environment does not set. A missing envFile is not an
// error.
func Load(envFile string) (*Config, error) {
	environ := environMap(os.Environ())

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			for k, v := range values {
				if _, ok := environ[k]; !ok {
					environ[k] = v
				}
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "failed to read %s", envFile)
		}
	}

	return Parse(environ)
}

func environMap(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if k, v, ok := strings.Cut(pair, "="); ok {
			out[k] = v
		}
	}
	return out
}

// Parse builds a Config from an explicit environment
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// Validate checks the selected backend has what it needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("store", c.Store, kvstore.Backends(), vb)
	switch kvstore.Backend(c.Store) {
	case kvstore.BackendRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
		errors.ValidateRange("redis_db", c.RedisDB, 0, maxRedisDB, vb)
	case kvstore.BackendBolt:
		errors.ValidateRequired("bolt_path", c.BoltPath, vb)
	case kvstore.BackendSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	}

	errors.ValidateRequired("catalog_path", c.CatalogPath, vb)
	errors.ValidateEnum("log_level", c.LogLevel,
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	return vb.Build()
}

// StoreOptions maps the configuration onto kvstore.Open options
func (c *Config) StoreOptions() *kvstore.Options {
	return &kvstore.Options{
		Backend:        kvstore.Backend(c.Store),
		RedisAddr:      c.RedisAddr,
		RedisPassword:  c.RedisPassword,
		RedisDB:        c.RedisDB,
		RedisKeyPrefix: c.RedisKeyPrefix,
		BoltPath:       c.BoltPath,
		SQLitePath:     c.SQLitePath,
	}
}

// SlogLevel converts LogLevel for a slog handler. Unknown values log at info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
