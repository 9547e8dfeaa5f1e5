package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/config"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse(map[string]string{})
	s.Require().NoError(err)

	s.Equal("bolt", cfg.Store)
	s.Equal("spellbook.db", cfg.BoltPath)
	s.Equal("spells.json", cfg.CatalogPath)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("spellbook:", cfg.RedisKeyPrefix)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestParseOverrides() {
	cfg, err := config.Parse(map[string]string{
		"SPELLBOOK_STORE":   " Redis ",
		"REDIS_ADDR":        "cache:6380",
		"REDIS_DB":          "2",
		"SPELLBOOK_CATALOG": "/data/spells.json",
		"LOG_LEVEL":         "DEBUG",
	})
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	opts := cfg.StoreOptions()
	s.Equal(kvstore.BackendRedis, opts.Backend)
	s.Equal("cache:6380", opts.RedisAddr)
	s.Equal(2, opts.RedisDB)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestParseRejectsBadNumbers() {
	_, err := config.Parse(map[string]string{"REDIS_DB": "two"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "unknown store",
			mutate:  func(c *config.Config) { c.Store = "etcd" },
			wantErr: "store: must be one of: memory, redis, bolt, sqlite",
		},
		{
			name:    "redis without address",
			mutate:  func(c *config.Config) { c.Store = "redis"; c.RedisAddr = "" },
			wantErr: "redis_addr: is required",
		},
		{
			name:    "redis db out of range",
			mutate:  func(c *config.Config) { c.Store = "redis"; c.RedisDB = 16 },
			wantErr: "redis_db: must be between 0 and 15",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *config.Config) { c.Store = "sqlite"; c.SQLitePath = " " },
			wantErr: "sqlite_path: is required",
		},
		{
			name:    "missing catalog",
			mutate:  func(c *config.Config) { c.CatalogPath = "" },
			wantErr: "catalog_path: is required",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.LogLevel = "trace" },
			wantErr: "log_level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Parse(map[string]string{})
			s.Require().NoError(err)
			tc.mutate(cfg)

			err = cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}

	s.Run("memory needs no paths", func() {
		cfg, err := config.Parse(map[string]string{"SPELLBOOK_STORE": "memory"})
		s.Require().NoError(err)
		cfg.BoltPath = ""
		s.NoError(cfg.Validate())
	})
}

func (s *ConfigTestSuite) TestLoadEnvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("SPELLBOOK_STORE=sqlite\nSPELLBOOK_SQLITE_PATH=/tmp/book.sqlite\n"), 0o600))

	s.T().Setenv("SPELLBOOK_SQLITE_PATH", "/var/lib/book.sqlite")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("sqlite", cfg.Store)
	s.Equal("/var/lib/book.sqlite", cfg.SQLitePath, "the environment wins over the file")
}

func (s *ConfigTestSuite) TestLoadMissingEnvFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "absent.env"))
	s.NoError(err)
}
