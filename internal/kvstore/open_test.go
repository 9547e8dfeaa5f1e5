package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
)

type OpenTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestOpenSuite(t *testing.T) {
	suite.Run(t, new(OpenTestSuite))
}

func (s *OpenTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OpenTestSuite) TestBackends() {
	mr := miniredis.RunT(s.T())
	dir := s.T().TempDir()

	testCases := []struct {
		name string
		opts *kvstore.Options
	}{
		{name: "memory", opts: &kvstore.Options{Backend: kvstore.BackendMemory}},
		{name: "bolt", opts: &kvstore.Options{Backend: kvstore.BackendBolt, BoltPath: filepath.Join(dir, "spellbook.db")}},
		{name: "sqlite", opts: &kvstore.Options{Backend: kvstore.BackendSQLite, SQLitePath: filepath.Join(dir, "spellbook.sqlite")}},
		{name: "redis", opts: &kvstore.Options{Backend: kvstore.BackendRedis, RedisAddr: mr.Addr(), RedisKeyPrefix: "sb:"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			store, err := kvstore.Open(s.ctx, tc.opts)
			s.Require().NoError(err)
			defer func() { s.NoError(store.Close()) }()

			s.Require().NoError(store.Set(s.ctx, "character-list", []byte("[]")))
			got, err := store.Get(s.ctx, "character-list")
			s.Require().NoError(err)
			s.Equal("[]", string(got))
		})
	}
}

func (s *OpenTestSuite) TestErrors() {
	s.Run("nil options", func() {
		_, err := kvstore.Open(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown backend", func() {
		_, err := kvstore.Open(s.ctx, &kvstore.Options{Backend: "etcd"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("bolt without a path", func() {
		_, err := kvstore.Open(s.ctx, &kvstore.Options{Backend: kvstore.BackendBolt})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unreachable redis", func() {
		mr, err := miniredis.Run()
		s.Require().NoError(err)
		addr := mr.Addr()
		mr.Close()

		_, err = kvstore.Open(s.ctx, &kvstore.Options{Backend: kvstore.BackendRedis, RedisAddr: addr})
		s.True(errors.IsUnavailable(err))
		s.Equal(addr, errors.GetMeta(err)["redis_addr"])
	})
}
