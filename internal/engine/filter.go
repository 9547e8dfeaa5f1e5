package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

// Filter narrows a spell list. Every criterion is optional and the
// criteria are independent, so the order they apply in does not matter.
type Filter struct {
	// Name matches a case-insensitive substring of the title
	Name string
	// Levels keeps spells at any of these levels, 0 for cantrips
	Levels []int
	// Classes keeps spells tagged with any of these classes
	Classes []dnd5e.ClassID
	// MaxLevel drops spells above the ceiling and spells of unknown level
	MaxLevel *int
}

// Apply returns the spells passing every set criterion, in input order
func (f Filter) Apply(spells []*dnd5e.Spell) []*dnd5e.Spell {
	name := strings.TrimSpace(f.Name)
	folder := cases.Fold()
	if name != "" {
		name = folder.String(name)
	}

	levels := make(map[int]struct{}, len(f.Levels))
	for _, l := range f.Levels {
		levels[l] = struct{}{}
	}

	var classNames []string
	for _, id := range f.Classes {
		if info, ok := id.Info(); ok {
			classNames = append(classNames, info.Name)
		}
	}

	out := []*dnd5e.Spell{}
	for _, spell := range spells {
		if name != "" && !strings.Contains(folder.String(spell.Title), name) {
			continue
		}
		if len(levels) > 0 {
			if _, ok := levels[spell.Level]; !ok {
				continue
			}
		}
		if len(f.Classes) > 0 && !taggedWithAny(spell, classNames) {
			continue
		}
		if f.MaxLevel != nil && (!spell.HasKnownLevel() || spell.Level > *f.MaxLevel) {
			continue
		}
		out = append(out, spell)
	}
	return out
}

func taggedWithAny(spell *dnd5e.Spell, classNames []string) bool {
	for _, name := range classNames {
		if spell.AvailableTo(name) {
			return true
		}
	}
	return false
}

// MaxLevelCeiling is the highest spell level shown when browsing:
// ceil(totalLevel/2)
func MaxLevelCeiling(totalLevel int) int {
	if totalLevel <= 0 {
		return 0
	}
	return (totalLevel + 1) / 2
}

// LevelsPresent returns the distinct known levels in ascending order
func LevelsPresent(spells []*dnd5e.Spell) []int {
	seen := make(map[int]struct{})
	levels := []int{}
	for _, spell := range spells {
		if !spell.HasKnownLevel() {
			continue
		}
		if _, ok := seen[spell.Level]; ok {
			continue
		}
		seen[spell.Level] = struct{}{}
		levels = append(levels, spell.Level)
	}
	sort.Ints(levels)
	return levels
}

// SortKey names the column a spell list is ordered by
type SortKey string

const (
	SortNone  SortKey = ""
	SortTitle SortKey = "title"
	SortLevel SortKey = "level"
)

// SortState is the current ordering of a spell list
type SortState struct {
	Key        SortKey
	Descending bool
}

// Validate rejects unknown sort keys
func (s SortState) Validate() error {
	switch s.Key {
	case SortNone, SortTitle, SortLevel:
		return nil
	default:
		return errors.InvalidArgumentf("unknown sort key %q", s.Key)
	}
}

// Toggle returns the state after the user selects a column. Selecting the
// current column flips the direction; a new column starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if key == s.Key && key != SortNone {
		return SortState{Key: key, Descending: !s.Descending}
	}
	return SortState{Key: key}
}

// SortSpells orders spells in place. SortNone keeps the input order.
func SortSpells(spells []*dnd5e.Spell, state SortState) {
	var less func(a, b *dnd5e.Spell) bool
	switch state.Key {
	case SortTitle:
		c := newTitleCollator()
		less = func(a, b *dnd5e.Spell) bool {
			return c.CompareString(a.Title, b.Title) < 0
		}
	case SortLevel:
		less = func(a, b *dnd5e.Spell) bool {
			return a.Level < b.Level
		}
	default:
		return
	}

	sort.SliceStable(spells, func(i, j int) bool {
		if state.Descending {
			return less(spells[j], spells[i])
		}
		return less(spells[i], spells[j])
	})
}
