package character_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/kvstore"
	"github.com/KirkDiggler/spellbook/internal/pkg/clock"
	"github.com/KirkDiggler/spellbook/internal/repositories/character"
	"github.com/KirkDiggler/spellbook/internal/testutils"
	"github.com/KirkDiggler/spellbook/internal/testutils/builders"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *kvstore.MemoryStore
	now   time.Time
	repo  character.Repository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kvstore.NewMemory()
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	repo, err := character.New(&character.Config{
		Store: s.store,
		Clock: &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) TestNewValidation() {
	_, err := character.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(&character.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestEmptyStore() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: "Aria"})
	s.True(errors.IsNotFound(err))

	slots, err := s.repo.LoadSlots(s.ctx, character.LoadSlotsInput{Name: "Aria"})
	s.Require().NoError(err)
	s.Empty(slots.Standard)
	s.Empty(slots.Pact)
}

func (s *RepositoryTestSuite) TestSaveLoadRoundTrip() {
	aria := builders.NewCharacterBuilder().
		WithName(testutils.TestCharacterName).
		WithClass(dnd5e.ClassWizard, 5).
		WithClass(dnd5e.ClassWarlock, 2).
		WithAbilityScores(16, 12, 14).
		WithSpells(testutils.MustSpell("Fire Bolt"), testutils.MustSpell("Fireball")).
		Build()
	standard := dnd5e.SlotPool{1: {true, false, false, false}, 3: {false, true}}
	pact := dnd5e.SlotPool{1: {true, false}}

	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: aria, Standard: standard, Pact: pact})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal(s.now, out.SavedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Aria"})
	s.Require().NoError(err)
	s.Equal(aria.Name, got.Character.Character.Name)
	s.Equal(aria.Classes, got.Character.Character.Classes)
	s.Equal(aria.AbilityScores, got.Character.Character.AbilityScores)
	s.Equal([]string{"Fire Bolt", "Fireball"}, testutils.Titles(got.Character.Character.AddedSpells))
	s.Equal(3, got.Character.Character.AddedSpells[1].Level)
	s.Equal("8d6", got.Character.Character.AddedSpells[1].Damage)
	s.True(got.Character.SavedAt.Equal(s.now))
	s.Equal(standard, got.Standard)
	s.Equal(pact, got.Pact)
}

func (s *RepositoryTestSuite) TestSaveOverwritesByName() {
	first := builders.NewCharacterBuilder().WithName("Aria").WithClass(dnd5e.ClassWizard, 1).Build()
	other := builders.NewCharacterBuilder().WithName("Brom").WithClass(dnd5e.ClassCleric, 3).Build()
	second := builders.NewCharacterBuilder().WithName("Aria").WithClass(dnd5e.ClassSorcerer, 4).Build()

	for _, c := range []*dnd5e.Character{first, other} {
		_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
		s.Require().NoError(err)
	}
	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: second})
	s.Require().NoError(err)
	s.False(out.Created)

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 2)
	s.Equal("Aria", list.Characters[0].Character.Name)
	s.Equal("Sorcerer (Lv4)", list.Characters[0].Character.Summary())
	s.Equal("Brom", list.Characters[1].Character.Name)
}

func (s *RepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: &dnd5e.Character{Name: "  "}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDeleteRemovesRecordAndPools() {
	aria := builders.NewCharacterBuilder().WithName("Aria").AsWarlock().Build()
	_, err := s.repo.Save(s.ctx, character.SaveInput{
		Character: aria,
		Standard:  dnd5e.SlotPool{},
		Pact:      dnd5e.SlotPool{3: {true, false}},
	})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"character-list", "spell-slots-Aria", "warlock-spell-slots-Aria"}, s.store.Keys())

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: "Aria"})
	s.Require().NoError(err)

	s.ElementsMatch([]string{"character-list"}, s.store.Keys())
	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Characters)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: "Aria"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestReadsEarlierSaveFormat() {
	raw := `[{
		"characterName": "Aria",
		"selectedClassIds": [12, 3, 12],
		"classLevels": {"12": 5},
		"abilityScores": {"intelligence": 16, "wisdom": 0, "charisma": 12},
		"addedSpells": [{"title": "Shield", "tags": ["1st level", "Wizard"], "contents": [], "spellLevel": 1}]
	}]`
	s.Require().NoError(s.store.Set(s.ctx, character.ListKey, []byte(raw)))

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Aria"})
	s.Require().NoError(err)

	c := got.Character.Character
	s.Equal([]dnd5e.ClassAssignment{
		{ClassID: dnd5e.ClassWizard, Level: 5},
		{ClassID: dnd5e.ClassCleric, Level: 1},
	}, c.Classes)
	s.Equal(dnd5e.AbilityScores{Intelligence: 16, Wisdom: 10, Charisma: 12}, c.AbilityScores)
	s.Equal([]string{"Wizard"}, c.AddedSpells[0].Classes)
	s.True(got.Character.SavedAt.IsZero())
}

func (s *RepositoryTestSuite) TestWritesSharedFieldNames() {
	aria := builders.NewCharacterBuilder().WithName("Aria").AsWizard().WithSpells(testutils.MustSpell("Shield")).Build()
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: aria})
	s.Require().NoError(err)

	raw, err := s.store.Get(s.ctx, character.ListKey)
	s.Require().NoError(err)

	var decoded []map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Require().Len(decoded, 1)
	s.Equal("Aria", decoded[0]["characterName"])
	s.Equal([]any{float64(12)}, decoded[0]["selectedClassIds"])
	s.Equal(map[string]any{"12": float64(5)}, decoded[0]["classLevels"])
	s.Contains(decoded[0], "abilityScores")
	spells := decoded[0]["addedSpells"].([]any)
	s.Equal(float64(1), spells[0].(map[string]any)["spellLevel"])

	pool, err := s.store.Get(s.ctx, character.StandardSlotsKey("Aria"))
	s.Require().NoError(err)
	s.JSONEq(`{}`, string(pool))
}

func (s *RepositoryTestSuite) TestLegacyFallback() {
	s.Require().NoError(s.store.Set(s.ctx, character.LegacyKey, []byte(`{"characterName":"Old","selectedClassIds":[2],"classLevels":{"2":3}}`)))

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Equal("Bard (Lv3)", list.Characters[0].Character.Summary())

	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: builders.NewCharacterBuilder().WithName("New").Build()})
	s.Require().NoError(err)

	list, err = s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Characters, 2, "the legacy record is carried into the list on first save")

	_, err = s.store.Get(s.ctx, character.LegacyKey)
	s.NoError(err, "the legacy key is never written or removed")
}

func (s *RepositoryTestSuite) TestMalformedDataIsTreatedAsEmpty() {
	s.Run("list", func() {
		s.Require().NoError(s.store.Set(s.ctx, character.ListKey, []byte(`{not json`)))
		list, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Empty(list.Characters)
	})

	s.Run("unnamed records are skipped", func() {
		s.Require().NoError(s.store.Set(s.ctx, character.ListKey, []byte(`[{"characterName":""},{"characterName":"Aria"}]`)))
		list, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Len(list.Characters, 1)
	})

	s.Run("legacy", func() {
		s.Require().NoError(s.store.Delete(s.ctx, character.ListKey))
		s.Require().NoError(s.store.Set(s.ctx, character.LegacyKey, []byte(`[]`)))
		list, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Empty(list.Characters)
	})

	s.Run("pools", func() {
		s.Require().NoError(s.store.Set(s.ctx, character.StandardSlotsKey("Aria"), []byte(`[1,2]`)))
		s.Require().NoError(s.store.Set(s.ctx, character.PactSlotsKey("Aria"), []byte(`null`)))
		slots, err := s.repo.LoadSlots(s.ctx, character.LoadSlotsInput{Name: "Aria"})
		s.Require().NoError(err)
		s.Equal(dnd5e.SlotPool{}, slots.Standard)
		s.Equal(dnd5e.SlotPool{}, slots.Pact)
	})
}
