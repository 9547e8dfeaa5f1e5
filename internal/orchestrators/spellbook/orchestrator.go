// Package spellbook implements the character builder session: editing a
// character, browsing eligible spells, managing added spells and tracking
// spell slots, with persistence through the character repository.
package spellbook

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/errors"
	characterrepo "github.com/KirkDiggler/spellbook/internal/repositories/character"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

// Config holds the dependencies for the spellbook orchestrator
type Config struct {
	Engine        engine.Engine
	CharacterRepo characterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	return vb.Build()
}

// Orchestrator opens sessions and manages the saved character list
type Orchestrator struct {
	engine        engine.Engine
	characterRepo characterrepo.Repository
}

// New creates a new spellbook orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		engine:        cfg.Engine,
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// CharacterSummary is one entry of the saved character list
type CharacterSummary struct {
	Name string
	// Classes reads like "Wizard (Lv5), Cleric (Lv1)"
	Classes    string
	TotalLevel int
	SpellCount int
	SavedAt    time.Time
}

// NewSession starts an empty character
func (o *Orchestrator) NewSession() *Session {
	s := &Session{
		engine: o.engine,
		repo:   o.characterRepo,
	}
	s.Reset()
	return s
}

// OpenSession loads a saved character together with its slot pools. Saved
// pools shorter than the current class shape are padded with unused slots.
func (o *Orchestrator) OpenSession(ctx context.Context, name string) (*Session, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Name: name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open character %s", name)
	}

	s := o.NewSession()
	s.character = out.Character.Character.Clone()
	s.slots = slotpool.New(&slotpool.Config{
		Assignments: s.character.Classes,
		Standard:    out.Standard,
		Pact:        out.Pact,
	})
	s.slots.Reconcile()

	slog.DebugContext(ctx, "opened character",
		"character_name", name,
		"classes", s.character.Summary(),
		"added_spells", len(s.character.AddedSpells))

	return s, nil
}

// ListCharacters summarizes every saved character in save order
func (o *Orchestrator) ListCharacters(ctx context.Context) ([]CharacterSummary, error) {
	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	summaries := make([]CharacterSummary, 0, len(out.Characters))
	for _, saved := range out.Characters {
		c := saved.Character
		summaries = append(summaries, CharacterSummary{
			Name:       c.Name,
			Classes:    c.Summary(),
			TotalLevel: c.TotalLevel(),
			SpellCount: len(c.AddedSpells),
			SavedAt:    saved.SavedAt,
		})
	}
	return summaries, nil
}

// DeleteCharacter removes a saved character and its slot pools
func (o *Orchestrator) DeleteCharacter(ctx context.Context, name string) error {
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{Name: name}); err != nil {
		return errors.Wrapf(err, "failed to delete character %s", name)
	}

	slog.InfoContext(ctx, "deleted character", "character_name", name)
	return nil
}

// CheckStorage reports unreadable or outdated character data and repairs
// it when fix is set
func (o *Orchestrator) CheckStorage(ctx context.Context, fix bool) (*characterrepo.CheckOutput, error) {
	out, err := o.characterRepo.Check(ctx, characterrepo.CheckInput{Fix: fix})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check character data")
	}
	if out.Fixed {
		slog.InfoContext(ctx, "repaired character data", "issues", len(out.Issues))
	}
	return out, nil
}
