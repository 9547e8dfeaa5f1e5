package spellbook

import (
	"context"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

// Slots returns the authoritative pool shapes for the current classes
func (s *Session) Slots(ctx context.Context) (*engine.CalculateSlotsOutput, error) {
	return s.engine.CalculateSlots(ctx, &engine.CalculateSlotsInput{Assignments: s.character.Classes})
}

// SlotRows lists the slot checkboxes to render
func (s *Session) SlotRows() []slotpool.Row {
	return s.slots.Rows()
}

// ToggleSlot flips a standard slot and returns its new expended state
func (s *Session) ToggleSlot(spellLevel, index int) (bool, error) {
	return s.slots.ToggleStandard(spellLevel, index)
}

// TogglePactSlot flips a pact magic slot and returns its new expended state
func (s *Session) TogglePactSlot(slotLevel, index int) (bool, error) {
	return s.slots.TogglePact(slotLevel, index)
}

// ResetSlots marks every slot in both pools unused
func (s *Session) ResetSlots() {
	s.slots.ResetAll()
}

// StandardPool returns a copy of the standard pool
func (s *Session) StandardPool() dnd5e.SlotPool {
	return s.slots.Standard()
}

// PactPool returns a copy of the pact pool
func (s *Session) PactPool() dnd5e.SlotPool {
	return s.slots.Pact()
}
