package engine

import (
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// Mode selects the spell source for ListSpells
type Mode string

const (
	// ModeEligible lists spells the assigned classes can learn
	ModeEligible Mode = "eligible"
	// ModeBrowse lists the whole catalog
	ModeBrowse Mode = "browse"
)

// ListSpellsInput contains the character state and display filters
type ListSpellsInput struct {
	Mode        Mode
	Assignments []dnd5e.ClassAssignment
	Filter      Filter
	Sort        SortState
}

// ListSpellsOutput contains the spells to display
type ListSpellsOutput struct {
	Spells []*dnd5e.Spell
	// Levels lists the distinct known levels before the level filter applies
	Levels []int
}

// GetSpellDetailsInput names the spell to parse
type GetSpellDetailsInput struct {
	Title string
}

// GetSpellDetailsOutput contains the spell and its parsed details
type GetSpellDetailsOutput struct {
	Spell   *dnd5e.Spell
	Details dnd5e.SpellDetails
}

// CalculateSlotsInput contains the class assignments
type CalculateSlotsInput struct {
	Assignments []dnd5e.ClassAssignment
}

// CalculateSlotsOutput contains the authoritative pool shapes
type CalculateSlotsOutput struct {
	// Standard holds slot counts by spell level, index 0 = level 1
	Standard []int
	// EffectiveCasterLevel is set when two or more classes are assigned
	EffectiveCasterLevel int
	Multiclass           bool
	// Pact is set when a Warlock is assigned
	Pact    dnd5e.PactSlots
	HasPact bool
}

// CalculateSpellcastingStatsInput contains the character inputs
type CalculateSpellcastingStatsInput struct {
	Assignments   []dnd5e.ClassAssignment
	AbilityScores dnd5e.AbilityScores
}

// CalculateSpellcastingStatsOutput contains per class stats
type CalculateSpellcastingStatsOutput struct {
	TotalLevel       int
	ProficiencyBonus int
	Classes          []ClassStats
}

// ClassStats are the casting numbers for one assigned class. SaveDC and
// AttackBonus are nil for classes without a spellcasting ability.
type ClassStats struct {
	ClassID     dnd5e.ClassID
	Level       int
	Ability     dnd5e.Ability
	SaveDC      *int
	AttackBonus *int
}
