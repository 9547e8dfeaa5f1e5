package character_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
	"github.com/KirkDiggler/spellbook/internal/repositories/character"
	"github.com/KirkDiggler/spellbook/internal/testutils"
	"github.com/KirkDiggler/spellbook/internal/testutils/builders"
)

// RedisIntegrationTestSuite runs the repository against a miniredis server
// so the raw key layout can be checked.
type RedisIntegrationTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	cleanup   func()
	repo      character.Repository
	ctx       context.Context
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationTestSuite))
}

func (s *RedisIntegrationTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup
	s.ctx = context.Background()

	store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client})
	s.Require().NoError(err)

	repo, err := character.New(&character.Config{Store: store})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisIntegrationTestSuite) TestCharacterLifecycle() {
	aria := builders.NewCharacterBuilder().
		WithName(testutils.TestCharacterName).
		WithClass(dnd5e.ClassCleric, 3).
		WithClass(dnd5e.ClassWarlock, 3).
		Build()

	_, err := s.repo.Save(s.ctx, character.SaveInput{
		Character: aria,
		Standard:  dnd5e.SlotPool{1: {true, false, false, false}},
		Pact:      dnd5e.SlotPool{2: {false, true}},
	})
	s.Require().NoError(err)

	s.True(s.miniRedis.Exists("character-list"))
	pool, err := s.miniRedis.Get("warlock-spell-slots-Aria")
	s.Require().NoError(err)
	s.JSONEq(`{"2":[false,true]}`, pool)

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Aria"})
	s.Require().NoError(err)
	s.Equal("Cleric (Lv3), Warlock (Lv3)", got.Character.Character.Summary())
	s.Equal(dnd5e.SlotPool{1: {true, false, false, false}}, got.Standard)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: "Aria"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("spell-slots-Aria"))
	s.False(s.miniRedis.Exists("warlock-spell-slots-Aria"))

	list, err := s.miniRedis.Get("character-list")
	s.Require().NoError(err)
	s.JSONEq(`[]`, list)
}
