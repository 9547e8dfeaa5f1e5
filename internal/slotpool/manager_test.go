package slotpool_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

type ManagerTestSuite struct {
	suite.Suite
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func wizard(level int) []dnd5e.ClassAssignment {
	return []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWizard, Level: level}}
}

func (s *ManagerTestSuite) TestToggleStandardMaterializesShape() {
	m := slotpool.New(&slotpool.Config{Assignments: wizard(5)})

	used, err := m.ToggleStandard(2, 1)
	s.Require().NoError(err)
	s.True(used)
	s.Equal(dnd5e.SlotPool{2: {false, true, false}}, m.Standard())
}

func (s *ManagerTestSuite) TestToggleIsAnInvolution() {
	m := slotpool.New(&slotpool.Config{Assignments: wizard(5)})

	_, err := m.ToggleStandard(1, 3)
	s.Require().NoError(err)
	_, err = m.ToggleStandard(1, 3)
	s.Require().NoError(err)

	s.Equal(dnd5e.SlotPool{1: {false, false, false, false}}, m.Standard())
}

func (s *ManagerTestSuite) TestToggleExtendsShortSequence() {
	m := slotpool.New(&slotpool.Config{
		Assignments: wizard(5),
		Standard:    dnd5e.SlotPool{1: {true}},
	})

	_, err := m.ToggleStandard(1, 2)
	s.Require().NoError(err)
	s.Equal([]bool{true, false, true, false}, m.Standard()[1])
}

func (s *ManagerTestSuite) TestToggleKeepsLongerSequence() {
	m := slotpool.New(&slotpool.Config{
		Assignments: wizard(1),
		Standard:    dnd5e.SlotPool{1: {false, false, false, true}},
	})

	_, err := m.ToggleStandard(1, 3)
	s.Require().NoError(err)
	s.Equal([]bool{false, false, false, false}, m.Standard()[1])
}

func (s *ManagerTestSuite) TestToggleStandardErrors() {
	m := slotpool.New(&slotpool.Config{Assignments: wizard(5)})

	_, err := m.ToggleStandard(0, 0)
	s.True(errors.IsInvalidArgument(err))

	_, err = m.ToggleStandard(10, 0)
	s.True(errors.IsInvalidArgument(err))

	_, err = m.ToggleStandard(3, 2)
	s.True(errors.IsInvalidArgument(err), "wizard 5 has two third level slots")

	_, err = m.ToggleStandard(1, -1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ManagerTestSuite) TestMulticlassSizing() {
	m := slotpool.New(&slotpool.Config{Assignments: []dnd5e.ClassAssignment{
		{ClassID: dnd5e.ClassPaladin, Level: 4},
		{ClassID: dnd5e.ClassSorcerer, Level: 4},
	}})

	s.Equal(3, m.StandardCount(3))
	_, err := m.ToggleStandard(3, 0)
	s.Require().NoError(err)
	s.Equal([]bool{true, false, false}, m.Standard()[3])
}

func (s *ManagerTestSuite) TestSingleClassSizingUsesClassTable() {
	m := slotpool.New(&slotpool.Config{Assignments: []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassPaladin, Level: 5}}})

	_, err := m.ToggleStandard(1, 0)
	s.Require().NoError(err)
	s.Len(m.Standard()[1], 4)
	s.Equal(0, m.StandardCount(3))
}

func (s *ManagerTestSuite) TestPactPoolIsSeparate() {
	m := slotpool.New(&slotpool.Config{Assignments: []dnd5e.ClassAssignment{
		{ClassID: dnd5e.ClassWarlock, Level: 5},
		{ClassID: dnd5e.ClassWizard, Level: 3},
	}})

	used, err := m.TogglePact(3, 1)
	s.Require().NoError(err)
	s.True(used)
	s.Equal(dnd5e.SlotPool{3: {false, true}}, m.Pact())

	_, err = m.ToggleStandard(1, 0)
	s.Require().NoError(err)
	s.Equal(dnd5e.SlotPool{3: {false, true}}, m.Pact(), "standard toggles leave the pact pool alone")
	s.Equal(dnd5e.SlotPool{1: {true, false, false, false}}, m.Standard())
}

func (s *ManagerTestSuite) TestTogglePactErrors() {
	s.Run("no warlock", func() {
		m := slotpool.New(&slotpool.Config{Assignments: wizard(5)})
		_, err := m.TogglePact(1, 0)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("wrong slot level", func() {
		m := slotpool.New(&slotpool.Config{Assignments: []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWarlock, Level: 5}}})
		_, err := m.TogglePact(1, 0)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("slot level out of range", func() {
		m := slotpool.New(nil)
		_, err := m.TogglePact(6, 0)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("persisted pact flags survive losing the warlock", func() {
		m := slotpool.New(&slotpool.Config{Pact: dnd5e.SlotPool{2: {true, true}}})
		used, err := m.TogglePact(2, 0)
		s.Require().NoError(err)
		s.False(used)
	})
}

func (s *ManagerTestSuite) TestResetAllPreservesShape() {
	m := slotpool.New(&slotpool.Config{
		Assignments: wizard(5),
		Standard:    dnd5e.SlotPool{1: {true, false, true, true}, 3: {true}},
		Pact:        dnd5e.SlotPool{2: {true, true}},
	})

	m.ResetAll()

	s.Equal(dnd5e.SlotPool{1: {false, false, false, false}, 3: {false}}, m.Standard())
	s.Equal(dnd5e.SlotPool{2: {false, false}}, m.Pact())
}

func (s *ManagerTestSuite) TestLevelDecreaseNeverShrinks() {
	m := slotpool.New(&slotpool.Config{
		Assignments: wizard(9),
		Standard:    dnd5e.SlotPool{5: {true}},
	})
	m.SetAssignments(wizard(1))
	m.Reconcile()

	standard := m.Standard()
	s.Equal([]bool{true}, standard[5])
	s.Equal([]bool{false, false}, standard[1])
}

func (s *ManagerTestSuite) TestManagerCopiesInput() {
	seed := dnd5e.SlotPool{1: {false, false}}
	m := slotpool.New(&slotpool.Config{Assignments: wizard(1), Standard: seed})

	_, err := m.ToggleStandard(1, 0)
	s.Require().NoError(err)
	s.False(seed[1][0])

	out := m.Standard()
	out[1][1] = true
	s.False(m.Standard()[1][1])
}
