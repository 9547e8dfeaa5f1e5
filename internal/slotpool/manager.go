// Package slotpool tracks expended spell slots for one character session.
// The standard pool is sized by the single class table or the multiclass
// table; the pact pool is sized by the warlock pact magic table and is
// never merged into standard counts.
package slotpool

import (
	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

// Config seeds a manager with persisted pools and the current classes
type Config struct {
	Assignments []dnd5e.ClassAssignment
	Standard    dnd5e.SlotPool
	Pact        dnd5e.SlotPool
}

// Manager owns and mutates the slot pools. It is not safe for concurrent use.
type Manager struct {
	assignments []dnd5e.ClassAssignment
	standard    dnd5e.SlotPool
	pact        dnd5e.SlotPool
}

// New creates a manager. A nil config starts with no classes and empty pools.
func New(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Manager{
		assignments: append([]dnd5e.ClassAssignment(nil), cfg.Assignments...),
		standard:    cfg.Standard.Clone(),
		pact:        cfg.Pact.Clone(),
	}
}

// SetAssignments updates the classes that size the pools. Existing flags
// are kept even when the new shape is smaller.
func (m *Manager) SetAssignments(assignments []dnd5e.ClassAssignment) {
	m.assignments = append([]dnd5e.ClassAssignment(nil), assignments...)
}

// Load replaces both pools
func (m *Manager) Load(standard, pact dnd5e.SlotPool) {
	m.standard = standard.Clone()
	m.pact = pact.Clone()
}

// Standard returns a copy of the standard pool
func (m *Manager) Standard() dnd5e.SlotPool {
	return m.standard.Clone()
}

// Pact returns a copy of the pact pool
func (m *Manager) Pact() dnd5e.SlotPool {
	return m.pact.Clone()
}

// StandardCount is the authoritative number of standard slots at a spell level
func (m *Manager) StandardCount(spellLevel int) int {
	return dnd5e.SlotCount(engine.SlotShape(m.assignments), spellLevel)
}

// PactCount is the authoritative number of pact slots at a slot level
func (m *Manager) PactCount(slotLevel int) int {
	entry, ok := engine.PactShape(m.assignments)
	if !ok || entry.SlotLevel != slotLevel {
		return 0
	}
	return entry.SlotCount
}

// ToggleStandard flips one standard slot. A missing or short sequence is
// extended with unused slots up to the authoritative size first.
func (m *Manager) ToggleStandard(spellLevel, index int) (bool, error) {
	if spellLevel < 1 || spellLevel > dnd5e.MaxSpellLevel {
		return false, errors.InvalidArgumentf("spell level %d must be between 1 and %d", spellLevel, dnd5e.MaxSpellLevel)
	}
	return toggle(m.standard, spellLevel, index, m.StandardCount(spellLevel))
}

// TogglePact flips one pact slot keyed by its slot level
func (m *Manager) TogglePact(slotLevel, index int) (bool, error) {
	if slotLevel < 1 || slotLevel > dnd5e.MaxPactSlotLevel {
		return false, errors.InvalidArgumentf("pact slot level %d must be between 1 and %d", slotLevel, dnd5e.MaxPactSlotLevel)
	}
	if _, ok := engine.PactShape(m.assignments); !ok && len(m.pact[slotLevel]) == 0 {
		return false, errors.FailedPrecondition("pact magic requires a warlock level")
	}
	return toggle(m.pact, slotLevel, index, m.PactCount(slotLevel))
}

func toggle(pool dnd5e.SlotPool, level, index, size int) (bool, error) {
	flags := extend(pool[level], size)
	if index < 0 || index >= len(flags) {
		return false, errors.InvalidArgumentf("slot %d is out of range for level %d (%d slots)", index, level, len(flags))
	}
	flags[index] = !flags[index]
	pool[level] = flags
	return flags[index], nil
}

// extend pads flags with unused slots up to size. It never shrinks.
func extend(flags []bool, size int) []bool {
	if len(flags) >= size {
		return flags
	}
	out := make([]bool, size)
	copy(out, flags)
	return out
}

// ResetAll marks every slot in both pools unused, keeping their shape
func (m *Manager) ResetAll() {
	for _, pool := range []dnd5e.SlotPool{m.standard, m.pact} {
		for level, flags := range pool {
			pool[level] = make([]bool, len(flags))
		}
	}
}

// Reconcile extends every pool level to its authoritative size. Sequences
// longer than the current shape are left alone.
func (m *Manager) Reconcile() {
	for i, count := range engine.SlotShape(m.assignments) {
		if count > 0 {
			m.standard[i+1] = extend(m.standard[i+1], count)
		}
	}
	if entry, ok := engine.PactShape(m.assignments); ok {
		m.pact[entry.SlotLevel] = extend(m.pact[entry.SlotLevel], entry.SlotCount)
	}
}
