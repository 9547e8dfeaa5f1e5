package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

type MulticlassTestSuite struct {
	suite.Suite
}

func TestMulticlassSuite(t *testing.T) {
	suite.Run(t, new(MulticlassTestSuite))
}

func (s *MulticlassTestSuite) TestEffectiveCasterLevel() {
	testCases := []struct {
		name        string
		assignments []dnd5e.ClassAssignment
		expected    int
	}{
		{"none", nil, 0},
		{"paladin 4 sorcerer 4", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassPaladin, Level: 4}, {ClassID: dnd5e.ClassSorcerer, Level: 4}}, 6},
		{"ranger rounds down", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassRanger, Level: 5}, {ClassID: dnd5e.ClassWizard, Level: 1}}, 3},
		{"artificer contributes nothing", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassArtificer, Level: 5}, {ClassID: dnd5e.ClassWizard, Level: 1}}, 1},
		{"artificer 3 wizard 1", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassArtificer, Level: 3}, {ClassID: dnd5e.ClassWizard, Level: 1}}, 1},
		{"fighter thirds", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassFighter, Level: 8}, {ClassID: dnd5e.ClassRogue, Level: 3}}, 3},
		{"warlock contributes nothing", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWarlock, Level: 10}, {ClassID: dnd5e.ClassCleric, Level: 2}}, 2},
		{"non casters contribute nothing", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassBarbarian, Level: 10}, {ClassID: dnd5e.ClassMonk, Level: 10}}, 0},
		{"capped at 20", []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWizard, Level: 15}, {ClassID: dnd5e.ClassCleric, Level: 15}}, 20},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.EffectiveCasterLevel(tc.assignments))
		})
	}
}

func (s *MulticlassTestSuite) TestEffectiveCasterLevelIsMonotone() {
	for _, id := range []dnd5e.ClassID{dnd5e.ClassWizard, dnd5e.ClassPaladin, dnd5e.ClassArtificer, dnd5e.ClassFighter, dnd5e.ClassWarlock} {
		prev := -1
		for level := 1; level <= 20; level++ {
			got := engine.EffectiveCasterLevel([]dnd5e.ClassAssignment{
				{ClassID: dnd5e.ClassCleric, Level: 3},
				{ClassID: id, Level: level},
			})
			s.GreaterOrEqual(got, prev, "%s level %d", id, level)
			prev = got
		}
	}
}

func (s *MulticlassTestSuite) TestSlotShape() {
	s.Run("no classes", func() {
		s.Equal([]int{}, engine.SlotShape(nil))
	})

	s.Run("single class uses its own table", func() {
		s.Equal([]int{4, 2}, engine.SlotShape([]dnd5e.ClassAssignment{{ClassID: dnd5e.ClassPaladin, Level: 5}}))
		s.Equal([]int{}, engine.SlotShape([]dnd5e.ClassAssignment{{ClassID: dnd5e.ClassPaladin, Level: 1}}))
	})

	s.Run("multiclass uses the multiclass table", func() {
		assignments := []dnd5e.ClassAssignment{
			{ClassID: dnd5e.ClassPaladin, Level: 4},
			{ClassID: dnd5e.ClassSorcerer, Level: 4},
		}
		s.Equal(dnd5e.MulticlassSlots(6), engine.SlotShape(assignments))
		s.Equal([]int{4, 3, 3}, engine.SlotShape(assignments))
	})

	s.Run("artificer only counts when single classed", func() {
		s.Equal([]int{3}, engine.SlotShape([]dnd5e.ClassAssignment{{ClassID: dnd5e.ClassArtificer, Level: 3}}))
		s.Equal([]int{2}, engine.SlotShape([]dnd5e.ClassAssignment{
			{ClassID: dnd5e.ClassArtificer, Level: 3},
			{ClassID: dnd5e.ClassWizard, Level: 1},
		}))
	})
}

func (s *MulticlassTestSuite) TestPactShape() {
	pact, ok := engine.PactShape([]dnd5e.ClassAssignment{
		{ClassID: dnd5e.ClassSorcerer, Level: 3},
		{ClassID: dnd5e.ClassWarlock, Level: 5},
	})
	s.True(ok)
	s.Equal(dnd5e.PactSlots{SlotCount: 2, SlotLevel: 3}, pact)

	_, ok = engine.PactShape([]dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWizard, Level: 5}})
	s.False(ok)
}
