package spellbook

import (
	"context"
	"slices"
	"sort"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

// SetMode switches between eligible spells and the whole catalog
func (s *Session) SetMode(mode engine.Mode) error {
	switch mode {
	case engine.ModeEligible, engine.ModeBrowse:
		s.mode = mode
		return nil
	default:
		return errors.InvalidArgumentf("unknown spell list mode %q", mode)
	}
}

// Mode returns the current spell list mode
func (s *Session) Mode() engine.Mode {
	return s.mode
}

// SetNameFilter sets the title substring filter. Empty clears it.
func (s *Session) SetNameFilter(name string) {
	s.filter.Name = name
}

// SetLevelFilter replaces the selected spell levels. No levels clears it.
func (s *Session) SetLevelFilter(levels ...int) {
	s.filter.Levels = append([]int(nil), levels...)
}

// ToggleLevelFilter adds or removes one level from the level filter
func (s *Session) ToggleLevelFilter(level int) bool {
	if i := slices.Index(s.filter.Levels, level); i >= 0 {
		s.filter.Levels = slices.Delete(s.filter.Levels, i, i+1)
		return false
	}
	s.filter.Levels = append(s.filter.Levels, level)
	return true
}

// SetClassFilter replaces the class filter. No classes clears it.
func (s *Session) SetClassFilter(ids ...dnd5e.ClassID) {
	s.filter.Classes = append([]dnd5e.ClassID(nil), ids...)
}

// Filter returns the current display filter
func (s *Session) Filter() engine.Filter {
	f := s.filter
	f.Levels = append([]int(nil), f.Levels...)
	f.Classes = append([]dnd5e.ClassID(nil), f.Classes...)
	return f
}

// ToggleSort selects a sort key. Selecting the current key flips the
// direction and a new key starts ascending.
func (s *Session) ToggleSort(key engine.SortKey) (engine.SortState, error) {
	next := s.sort.Toggle(key)
	if err := next.Validate(); err != nil {
		return s.sort, err
	}
	s.sort = next
	return s.sort, nil
}

// Spells lists the spells to display for the current mode, filters and sort
func (s *Session) Spells(ctx context.Context) (*engine.ListSpellsOutput, error) {
	out, err := s.engine.ListSpells(ctx, &engine.ListSpellsInput{
		Mode:        s.mode,
		Assignments: s.character.Classes,
		Filter:      s.Filter(),
		Sort:        s.sort,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}
	return out, nil
}

// SpellDetails parses the content blocks of one catalog spell
func (s *Session) SpellDetails(ctx context.Context, title string) (*engine.GetSpellDetailsOutput, error) {
	return s.engine.GetSpellDetails(ctx, &engine.GetSpellDetailsInput{Title: title})
}

// ToggleSpellSelection marks a listed spell for adding, or unmarks it
func (s *Session) ToggleSpellSelection(title string) bool {
	var selected bool
	s.selectedSpells, selected = toggleTitle(s.selectedSpells, title)
	return selected
}

// SelectedSpells returns the titles marked for adding
func (s *Session) SelectedSpells() []string {
	return append([]string(nil), s.selectedSpells...)
}

// AddSelectedSpells adds the marked spells that are currently listed and
// not already added, then clears the marks. Added spells stay ordered by
// level. It returns the number of spells added.
func (s *Session) AddSelectedSpells(ctx context.Context) (int, error) {
	if len(s.selectedSpells) == 0 {
		return 0, nil
	}

	listed, err := s.Spells(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, spell := range listed.Spells {
		if !slices.Contains(s.selectedSpells, spell.Title) || s.hasAddedSpell(spell.Title) {
			continue
		}
		s.character.AddedSpells = append(s.character.AddedSpells, spell.Clone())
		added++
	}
	sort.SliceStable(s.character.AddedSpells, func(i, j int) bool {
		return s.character.AddedSpells[i].Level < s.character.AddedSpells[j].Level
	})
	s.selectedSpells = nil
	return added, nil
}

// AddedSpells returns the added spells passing the level filter
func (s *Session) AddedSpells() []*dnd5e.Spell {
	filter := engine.Filter{Levels: s.filter.Levels}
	return filter.Apply(s.character.AddedSpells)
}

// RemoveAddedSpell removes one added spell by title
func (s *Session) RemoveAddedSpell(title string) bool {
	before := len(s.character.AddedSpells)
	s.character.AddedSpells = slices.DeleteFunc(s.character.AddedSpells, func(spell *dnd5e.Spell) bool {
		return spell.Title == title
	})
	s.selectedAdded = slices.DeleteFunc(s.selectedAdded, func(t string) bool { return t == title })
	return len(s.character.AddedSpells) < before
}

// ToggleAddedSelection marks an added spell for bulk removal, or unmarks it
func (s *Session) ToggleAddedSelection(title string) bool {
	var selected bool
	s.selectedAdded, selected = toggleTitle(s.selectedAdded, title)
	return selected
}

// RemoveSelectedAddedSpells removes every marked added spell and clears
// the marks. It returns the number removed.
func (s *Session) RemoveSelectedAddedSpells() int {
	before := len(s.character.AddedSpells)
	s.character.AddedSpells = slices.DeleteFunc(s.character.AddedSpells, func(spell *dnd5e.Spell) bool {
		return slices.Contains(s.selectedAdded, spell.Title)
	})
	s.selectedAdded = nil
	return before - len(s.character.AddedSpells)
}

func (s *Session) hasAddedSpell(title string) bool {
	return slices.ContainsFunc(s.character.AddedSpells, func(spell *dnd5e.Spell) bool {
		return spell.Title == title
	})
}

func toggleTitle(titles []string, title string) ([]string, bool) {
	if i := slices.Index(titles, title); i >= 0 {
		return slices.Delete(titles, i, i+1), false
	}
	return append(titles, title), true
}
