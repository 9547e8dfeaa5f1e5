package slotpool_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

type RowsTestSuite struct {
	suite.Suite
}

func TestRowsSuite(t *testing.T) {
	suite.Run(t, new(RowsTestSuite))
}

func (s *RowsTestSuite) TestNoClasses() {
	s.Empty(slotpool.New(nil).Rows())
}

func (s *RowsTestSuite) TestSingleClass() {
	m := slotpool.New(&slotpool.Config{
		Assignments: []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWizard, Level: 5}},
		Standard:    dnd5e.SlotPool{2: {true}},
	})

	s.Equal([]slotpool.Row{
		{Kind: slotpool.RowStandard, Label: "Wizard", Level: 1, Total: 4, Expended: []bool{false, false, false, false}},
		{Kind: slotpool.RowStandard, Label: "Wizard", Level: 2, Total: 3, Expended: []bool{true, false, false}},
		{Kind: slotpool.RowStandard, Label: "Wizard", Level: 3, Total: 2, Expended: []bool{false, false}},
	}, m.Rows())
}

func (s *RowsTestSuite) TestWarlockOnly() {
	m := slotpool.New(&slotpool.Config{
		Assignments: []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWarlock, Level: 5}},
	})

	s.Equal([]slotpool.Row{
		{Kind: slotpool.RowPact, Label: slotpool.LabelPactMagic, Level: 3, Total: 2, Expended: []bool{false, false}},
	}, m.Rows())
}

func (s *RowsTestSuite) TestMulticlassWithWarlock() {
	m := slotpool.New(&slotpool.Config{
		Assignments: []dnd5e.ClassAssignment{
			{ClassID: dnd5e.ClassSorcerer, Level: 2},
			{ClassID: dnd5e.ClassWarlock, Level: 2},
		},
		Pact: dnd5e.SlotPool{1: {true}},
	})

	rows := m.Rows()
	s.Require().Len(rows, 2)
	s.Equal(slotpool.LabelMulticlass, rows[0].Label)
	s.Equal(3, rows[0].Total)
	s.Equal(slotpool.RowPact, rows[1].Kind)
	s.Equal([]bool{true, false}, rows[1].Expended)
}

func (s *RowsTestSuite) TestRowsKeepPersistedExtras() {
	m := slotpool.New(&slotpool.Config{
		Assignments: []dnd5e.ClassAssignment{{ClassID: dnd5e.ClassWizard, Level: 1}},
		Standard:    dnd5e.SlotPool{1: {false, false, true}},
	})

	rows := m.Rows()
	s.Require().Len(rows, 1)
	s.Equal(2, rows[0].Total)
	s.Equal([]bool{false, false, true}, rows[0].Expended)
}
