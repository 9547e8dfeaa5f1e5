package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/testutils"
)

type FilterTestSuite struct {
	suite.Suite
	spells []*dnd5e.Spell
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) SetupTest() {
	s.spells = testutils.TestCatalog().Spells()
}

func intPtr(v int) *int {
	return &v
}

func (s *FilterTestSuite) TestApply() {
	testCases := []struct {
		name     string
		filter   engine.Filter
		expected []string
	}{
		{
			name:     "name substring ignores case and whitespace",
			filter:   engine.Filter{Name: "  mIsT "},
			expected: []string{"Misty Step"},
		},
		{
			name:     "levels",
			filter:   engine.Filter{Levels: []int{5}},
			expected: []string{"Cone of Cold"},
		},
		{
			name:     "classes match any",
			filter:   engine.Filter{Classes: []dnd5e.ClassID{dnd5e.ClassWarlock}, Levels: []int{1, 3}},
			expected: []string{"Hex", "Counterspell", "Hunger of Hadar"},
		},
		{
			name:     "ceiling drops unknown levels",
			filter:   engine.Filter{Classes: []dnd5e.ClassID{dnd5e.ClassWarlock}, MaxLevel: intPtr(2)},
			expected: []string{"Hex", "Misty Step"},
		},
		{
			name:     "ceiling zero keeps cantrips",
			filter:   engine.Filter{Name: "light", MaxLevel: intPtr(0)},
			expected: []string{"Light"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, testutils.Titles(tc.filter.Apply(s.spells)))
		})
	}
}

func (s *FilterTestSuite) TestEmptyFilterKeepsEverything() {
	s.Len(engine.Filter{}.Apply(s.spells), len(s.spells))
}

func (s *FilterTestSuite) TestFilterOrderIndependence() {
	byName := engine.Filter{Name: "fire"}
	byLevel := engine.Filter{Levels: []int{3}}

	a := byLevel.Apply(byName.Apply(s.spells))
	b := byName.Apply(byLevel.Apply(s.spells))
	combined := engine.Filter{Name: "fire", Levels: []int{3}}.Apply(s.spells)

	s.Equal(testutils.Titles(a), testutils.Titles(b))
	s.Equal(testutils.Titles(a), testutils.Titles(combined))
}

func (s *FilterTestSuite) TestMaxLevelCeiling() {
	s.Equal(0, engine.MaxLevelCeiling(0))
	s.Equal(1, engine.MaxLevelCeiling(1))
	s.Equal(1, engine.MaxLevelCeiling(2))
	s.Equal(3, engine.MaxLevelCeiling(5))
	s.Equal(10, engine.MaxLevelCeiling(20))
	s.Equal(13, engine.MaxLevelCeiling(25))
}

func (s *FilterTestSuite) TestLevelsPresent() {
	s.Equal([]int{0, 1, 2, 3, 5}, engine.LevelsPresent(s.spells))
	s.Equal([]int{}, engine.LevelsPresent(nil))
}

func (s *FilterTestSuite) TestSortToggle() {
	state := engine.SortState{}

	state = state.Toggle(engine.SortTitle)
	s.Equal(engine.SortState{Key: engine.SortTitle}, state)

	state = state.Toggle(engine.SortTitle)
	s.Equal(engine.SortState{Key: engine.SortTitle, Descending: true}, state)

	state = state.Toggle(engine.SortTitle)
	s.False(state.Descending)

	state = state.Toggle(engine.SortTitle).Toggle(engine.SortLevel)
	s.Equal(engine.SortState{Key: engine.SortLevel}, state)
}

func (s *FilterTestSuite) TestSortSpells() {
	spells := engine.Filter{Levels: []int{1}}.Apply(s.spells)

	engine.SortSpells(spells, engine.SortState{Key: engine.SortTitle})
	s.Equal([]string{"Bless", "Cure Wounds", "Detect Magic", "Hex", "Magic Missile", "Shield"}, testutils.Titles(spells))

	engine.SortSpells(spells, engine.SortState{Key: engine.SortTitle, Descending: true})
	s.Equal([]string{"Shield", "Magic Missile", "Hex", "Detect Magic", "Cure Wounds", "Bless"}, testutils.Titles(spells))

	mixed := engine.Filter{Name: "c"}.Apply(s.spells)
	engine.SortSpells(mixed, engine.SortState{Key: engine.SortLevel, Descending: true})
	for i := 1; i < len(mixed); i++ {
		s.GreaterOrEqual(mixed[i-1].Level, mixed[i].Level)
	}
}
