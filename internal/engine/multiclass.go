package engine

import (
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// EffectiveCasterLevel aggregates class levels for the multiclass slot
// table. Full casters count their level, half casters half and third
// casters a third, rounding down. Artificer, pact and non-casters add
// nothing; Artificer's rounded-up table only applies single-classed. The
// result is capped at 20.
func EffectiveCasterLevel(assignments []dnd5e.ClassAssignment) int {
	total := 0
	for _, a := range assignments {
		info, ok := a.ClassID.Info()
		if !ok || a.Level <= 0 {
			continue
		}
		switch info.Progression {
		case dnd5e.CasterFull:
			total += a.Level
		case dnd5e.CasterHalf:
			total += a.Level / 2
		case dnd5e.CasterThird:
			total += a.Level / 3
		}
	}
	if total > dnd5e.MaxClassLevel {
		return dnd5e.MaxClassLevel
	}
	return total
}

// SlotShape returns the authoritative standard slot counts: the class's own
// table for a single class, the multiclass table at the effective caster
// level for two or more.
func SlotShape(assignments []dnd5e.ClassAssignment) []int {
	switch len(assignments) {
	case 0:
		return []int{}
	case 1:
		return dnd5e.SlotsForClass(assignments[0].ClassID, assignments[0].Level)
	default:
		return dnd5e.MulticlassSlots(EffectiveCasterLevel(assignments))
	}
}

// PactShape returns the pact magic entry for an assigned Warlock
func PactShape(assignments []dnd5e.ClassAssignment) (dnd5e.PactSlots, bool) {
	for _, a := range assignments {
		if a.ClassID == dnd5e.ClassWarlock {
			return dnd5e.PactSlotsForLevel(a.Level)
		}
	}
	return dnd5e.PactSlots{}, false
}
