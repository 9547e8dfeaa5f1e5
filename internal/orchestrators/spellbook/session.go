package spellbook

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	characterrepo "github.com/KirkDiggler/spellbook/internal/repositories/character"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

// Session is the state of one character being edited. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	engine engine.Engine
	repo   characterrepo.Repository

	character *dnd5e.Character
	slots     *slotpool.Manager

	mode   engine.Mode
	filter engine.Filter
	sort   engine.SortState

	// selection order is kept so added spells follow the order picked
	selectedSpells []string
	selectedAdded  []string
}

// Reset starts a new character. Name, classes, ability scores, filters,
// selections, added spells and slot pools are all cleared.
func (s *Session) Reset() {
	s.character = &dnd5e.Character{AbilityScores: dnd5e.DefaultAbilityScores()}
	s.slots = slotpool.New(nil)
	s.mode = engine.ModeEligible
	s.filter = engine.Filter{}
	s.sort = engine.SortState{}
	s.selectedSpells = nil
	s.selectedAdded = nil
}

// Character returns a copy of the character being edited
func (s *Session) Character() *dnd5e.Character {
	return s.character.Clone()
}

// SetName renames the character. Saving under a new name creates a new
// record and leaves the old one in place.
func (s *Session) SetName(name string) {
	s.character.Name = name
}

// SetClasses replaces the class selection. Classes already assigned keep
// their level, new ones start at level 1 and dropped ones lose their level.
func (s *Session) SetClasses(ids []dnd5e.ClassID) error {
	classes := make([]dnd5e.ClassAssignment, 0, len(ids))
	seen := make(map[dnd5e.ClassID]bool, len(ids))
	for _, id := range ids {
		if _, ok := id.Info(); !ok {
			return errors.InvalidArgumentf("unknown class id %d", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		assignment, ok := s.character.Assignment(id)
		if !ok {
			assignment = dnd5e.ClassAssignment{ClassID: id, Level: dnd5e.MinClassLevel}
		}
		classes = append(classes, assignment)
	}

	s.character.Classes = classes
	s.slots.SetAssignments(classes)
	return nil
}

// ToggleClass selects or deselects one class and reports whether it is
// now selected
func (s *Session) ToggleClass(id dnd5e.ClassID) (bool, error) {
	ids := make([]dnd5e.ClassID, 0, len(s.character.Classes)+1)
	selected := true
	for _, a := range s.character.Classes {
		if a.ClassID == id {
			selected = false
			continue
		}
		ids = append(ids, a.ClassID)
	}
	if selected {
		ids = append(ids, id)
	}
	if err := s.SetClasses(ids); err != nil {
		return false, err
	}
	return selected, nil
}

// SetClassLevel applies a typed level. Empty or unparseable input becomes
// 1 and numbers are clamped to 1..20.
func (s *Session) SetClassLevel(id dnd5e.ClassID, input string) (int, error) {
	return s.updateLevel(id, func(int) int {
		return dnd5e.ParseLevel(input)
	})
}

// IncrementLevel raises a class level by one, stopping at 20
func (s *Session) IncrementLevel(id dnd5e.ClassID) (int, error) {
	return s.updateLevel(id, func(level int) int {
		return dnd5e.ClampLevel(level + 1)
	})
}

// DecrementLevel lowers a class level by one, stopping at 1. Slot pools
// keep their size.
func (s *Session) DecrementLevel(id dnd5e.ClassID) (int, error) {
	return s.updateLevel(id, func(level int) int {
		return dnd5e.ClampLevel(level - 1)
	})
}

func (s *Session) updateLevel(id dnd5e.ClassID, next func(int) int) (int, error) {
	for i, a := range s.character.Classes {
		if a.ClassID != id {
			continue
		}
		s.character.Classes[i].Level = next(a.Level)
		s.slots.SetAssignments(s.character.Classes)
		return s.character.Classes[i].Level, nil
	}
	return 0, errors.FailedPreconditionf("class %s is not selected", id).
		WithMeta("class_id", int(id))
}

// SetAbilityScore applies typed input to an ability score. Empty input
// resets it to 10 and out of range input is ignored. It reports whether
// the score changed.
func (s *Session) SetAbilityScore(ability dnd5e.Ability, input string) (bool, error) {
	if _, ok := s.character.AbilityScores.Score(ability); !ok {
		return false, errors.InvalidArgumentf("unknown ability %q", ability)
	}
	return s.character.AbilityScores.Set(ability, input), nil
}

// Stats returns proficiency bonus, save DC and attack bonus per class
func (s *Session) Stats(ctx context.Context) (*engine.CalculateSpellcastingStatsOutput, error) {
	return s.engine.CalculateSpellcastingStats(ctx, &engine.CalculateSpellcastingStatsInput{
		Assignments:   s.character.Classes,
		AbilityScores: s.character.AbilityScores,
	})
}

// Save writes the character and both slot pools
func (s *Session) Save(ctx context.Context) (*characterrepo.SaveOutput, error) {
	if strings.TrimSpace(s.character.Name) == "" {
		return nil, errors.InvalidArgument("character name is required to save")
	}

	out, err := s.repo.Save(ctx, characterrepo.SaveInput{
		Character: s.character.Clone(),
		Standard:  s.slots.Standard(),
		Pact:      s.slots.Pact(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", s.character.Name)
	}

	slog.InfoContext(ctx, "saved character",
		"character_name", s.character.Name,
		"created", out.Created,
		"classes", s.character.Summary())

	return out, nil
}
