package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/spellbook/internal/catalog"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

type engine struct {
	catalog *catalog.Catalog
}

// Config contains the engine dependencies
type Config struct {
	Catalog *catalog.Catalog
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	return nil
}

// New creates an engine over a loaded catalog
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{catalog: cfg.Catalog}, nil
}

func (e *engine) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := input.Sort.Validate(); err != nil {
		return nil, err
	}

	filter := input.Filter
	var source []*dnd5e.Spell
	switch input.Mode {
	case ModeEligible, "":
		source = EligibleSpells(e.catalog.Spells(), input.Assignments)
		filter.MaxLevel = nil
	case ModeBrowse:
		source = AllSpells(e.catalog.Spells())
		ceiling := MaxLevelCeiling(TotalCharacterLevel(input.Assignments))
		filter.MaxLevel = &ceiling
	default:
		return nil, errors.InvalidArgumentf("unknown spell list mode %q", input.Mode)
	}

	levelOptions := filter
	levelOptions.Levels = nil
	levels := LevelsPresent(levelOptions.Apply(source))

	spells := filter.Apply(source)
	SortSpells(spells, input.Sort)

	slog.DebugContext(ctx, "listed spells",
		"mode", input.Mode,
		"source", len(source),
		"shown", len(spells))

	return &ListSpellsOutput{Spells: spells, Levels: levels}, nil
}

func (e *engine) GetSpellDetails(_ context.Context, input *GetSpellDetailsInput) (*GetSpellDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	spell, ok := e.catalog.Get(input.Title)
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", input.Title)
	}
	return &GetSpellDetailsOutput{
		Spell:   spell,
		Details: catalog.ParseDetails(spell.Contents),
	}, nil
}

func (e *engine) CalculateSlots(_ context.Context, input *CalculateSlotsInput) (*CalculateSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out := &CalculateSlotsOutput{
		Standard:   SlotShape(input.Assignments),
		Multiclass: len(input.Assignments) >= 2,
	}
	if out.Multiclass {
		out.EffectiveCasterLevel = EffectiveCasterLevel(input.Assignments)
	}
	out.Pact, out.HasPact = PactShape(input.Assignments)
	return out, nil
}

func (e *engine) CalculateSpellcastingStats(
	_ context.Context,
	input *CalculateSpellcastingStatsInput,
) (*CalculateSpellcastingStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	total := TotalCharacterLevel(input.Assignments)
	out := &CalculateSpellcastingStatsOutput{
		TotalLevel:       total,
		ProficiencyBonus: ProficiencyBonus(total),
		Classes:          make([]ClassStats, 0, len(input.Assignments)),
	}

	for _, a := range input.Assignments {
		stats := ClassStats{ClassID: a.ClassID, Level: a.Level}
		if info, ok := a.ClassID.Info(); ok {
			stats.Ability = info.Ability
		}
		if dc, ok := SpellSaveDC(a.ClassID, input.AbilityScores, total); ok {
			stats.SaveDC = &dc
		}
		if bonus, ok := SpellAttackBonus(a.ClassID, input.AbilityScores, total); ok {
			stats.AttackBonus = &bonus
		}
		out.Classes = append(out.Classes, stats)
	}
	return out, nil
}
