package slotpool

import (
	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// RowKind separates standard slot rows from the pact magic row
type RowKind string

const (
	RowStandard RowKind = "standard"
	RowPact     RowKind = "pact"
)

// LabelMulticlass heads standard rows sized by the multiclass table
const LabelMulticlass = "Multiclass"

// LabelPactMagic heads the warlock row
const LabelPactMagic = "Pact Magic"

// Row is one displayable line of slot checkboxes
type Row struct {
	Kind  RowKind
	Label string
	// Level is the spell level, or the pact slot level for pact rows
	Level int
	// Total is the authoritative slot count for the level
	Total int
	// Expended has at least Total entries; persisted extras are kept
	Expended []bool
}

// Rows lists what to render: multiclass rows with two or more classes,
// otherwise the rows of the single non-warlock class, then a pact row when
// a warlock is assigned. Levels without slots are omitted.
func (m *Manager) Rows() []Row {
	var rows []Row

	label := ""
	switch {
	case len(m.assignments) >= 2:
		label = LabelMulticlass
	case len(m.assignments) == 1 && m.assignments[0].ClassID != dnd5e.ClassWarlock:
		label = m.assignments[0].ClassID.String()
	}

	if label != "" {
		for i, count := range engine.SlotShape(m.assignments) {
			if count == 0 {
				continue
			}
			level := i + 1
			rows = append(rows, Row{
				Kind:     RowStandard,
				Label:    label,
				Level:    level,
				Total:    count,
				Expended: append([]bool{}, extend(m.standard[level], count)...),
			})
		}
	}

	if entry, ok := engine.PactShape(m.assignments); ok {
		rows = append(rows, Row{
			Kind:     RowPact,
			Label:    LabelPactMagic,
			Level:    entry.SlotLevel,
			Total:    entry.SlotCount,
			Expended: append([]bool{}, extend(m.pact[entry.SlotLevel], entry.SlotCount)...),
		})
	}
	return rows
}
