package character_test

import (
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/repositories/character"
	"github.com/KirkDiggler/spellbook/internal/testutils/builders"
)

func (s *RepositoryTestSuite) saveWizard(name string) {
	_, err := s.repo.Save(s.ctx, character.SaveInput{
		Character: builders.NewCharacterBuilder().WithName(name).AsWizard().Build(),
		Standard:  dnd5e.SlotPool{1: {true, false}},
	})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestCheckCleanData() {
	s.saveWizard("Aria")

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Equal(3, out.Checked)
	s.Empty(out.Issues)
	s.False(out.Fixed)
}

func (s *RepositoryTestSuite) TestCheckEmptyStore() {
	out, err := s.repo.Check(s.ctx, character.CheckInput{})
	s.Require().NoError(err)
	s.Zero(out.Checked)
	s.Empty(out.Issues)
}

func (s *RepositoryTestSuite) TestCheckReportsWithoutFixing() {
	s.saveWizard("Aria")
	s.Require().NoError(s.store.Set(s.ctx, character.PactSlotsKey("Aria"), []byte(`[1,2`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{})
	s.Require().NoError(err)
	s.Equal([]character.Issue{{Key: character.PactSlotsKey("Aria"), Problem: "malformed slot pool"}}, out.Issues)
	s.False(out.Fixed)

	raw, err := s.store.Get(s.ctx, character.PactSlotsKey("Aria"))
	s.Require().NoError(err)
	s.Equal(`[1,2`, string(raw))
}

func (s *RepositoryTestSuite) TestCheckFixesMalformedPool() {
	s.saveWizard("Aria")
	s.Require().NoError(s.store.Set(s.ctx, character.StandardSlotsKey("Aria"), []byte(`oops`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Len(out.Issues, 1)
	s.True(out.Fixed)

	raw, err := s.store.Get(s.ctx, character.StandardSlotsKey("Aria"))
	s.Require().NoError(err)
	s.JSONEq(`{}`, string(raw))

	again, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Empty(again.Issues)
}

func (s *RepositoryTestSuite) TestCheckDropsBadListEntries() {
	s.Require().NoError(s.store.Set(s.ctx, character.ListKey, []byte(`[
		{"characterName":"Aria","selectedClassIds":[12],"classLevels":{"12":5}},
		{"characterName":"  ","selectedClassIds":[]},
		{"characterName":"Aria","selectedClassIds":[2],"classLevels":{"2":1}}
	]`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Equal([]character.Issue{
		{Key: character.ListKey, Problem: "unnamed character record"},
		{Key: character.ListKey, Problem: "duplicate record for Aria"},
	}, out.Issues)
	s.True(out.Fixed)

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Equal("Wizard (Lv5)", list.Characters[0].Character.Summary())
}

func (s *RepositoryTestSuite) TestCheckMigratesLegacyRecord() {
	s.Require().NoError(s.store.Set(s.ctx, character.LegacyKey,
		[]byte(`{"characterName":"Old","selectedClassIds":[2],"classLevels":{"2":3}}`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Equal([]character.Issue{
		{Key: character.LegacyKey, Problem: "legacy record for Old not yet in the character list"},
	}, out.Issues)

	_, err = s.store.Get(s.ctx, character.LegacyKey)
	s.Error(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Old"})
	s.Require().NoError(err)
	s.Equal("Bard (Lv3)", got.Character.Character.Summary())
}

func (s *RepositoryTestSuite) TestCheckRemovesSupersededLegacyRecord() {
	s.saveWizard("Aria")
	s.Require().NoError(s.store.Set(s.ctx, character.LegacyKey, []byte(`{"characterName":"Old"}`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Equal([]character.Issue{
		{Key: character.LegacyKey, Problem: "legacy record superseded by the character list"},
	}, out.Issues)

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Characters, 1)
	s.NotContains(s.store.Keys(), character.LegacyKey)
}

func (s *RepositoryTestSuite) TestCheckResetsMalformedList() {
	s.Require().NoError(s.store.Set(s.ctx, character.ListKey, []byte(`{not json`)))

	out, err := s.repo.Check(s.ctx, character.CheckInput{Fix: true})
	s.Require().NoError(err)
	s.Equal([]character.Issue{{Key: character.ListKey, Problem: "malformed character list"}}, out.Issues)

	raw, err := s.store.Get(s.ctx, character.ListKey)
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(raw))
}
