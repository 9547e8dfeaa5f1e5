// Package engine applies the spellcasting rules: which spells a character
// may learn, how many slots they have and their derived casting stats.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/spellbook/internal/engine Engine

import (
	"context"
)

// Engine provides spellcasting rules calculations over a spell catalog
type Engine interface {
	// ListSpells returns the filtered, sorted spell list for a character.
	// Eligible mode lists what the assigned classes can learn; browse mode
	// lists the whole catalog under the character level ceiling.
	// Returns errors.InvalidArgument for an unknown mode or sort key
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)

	// GetSpellDetails parses the content blocks of a spell
	// Returns errors.NotFound if the title is not in the catalog
	GetSpellDetails(ctx context.Context, input *GetSpellDetailsInput) (*GetSpellDetailsOutput, error)

	// CalculateSlots returns the standard slot shape and the pact slot entry
	CalculateSlots(ctx context.Context, input *CalculateSlotsInput) (*CalculateSlotsOutput, error)

	// CalculateSpellcastingStats returns proficiency, save DC and attack
	// bonus per assigned class
	CalculateSpellcastingStats(
		ctx context.Context,
		input *CalculateSpellcastingStatsInput,
	) (*CalculateSpellcastingStatsOutput, error)
}
