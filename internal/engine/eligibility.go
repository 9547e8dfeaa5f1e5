package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// EligibleSpells returns the spells the assigned classes can learn. A spell
// qualifies for an assignment when it is tagged with the class name and its
// known level is at most the class level. The union is deduplicated by
// title, keeping the first occurrence in assignment order, and ordered by
// level then title.
func EligibleSpells(spells []*dnd5e.Spell, assignments []dnd5e.ClassAssignment) []*dnd5e.Spell {
	seen := make(map[string]struct{})
	out := []*dnd5e.Spell{}

	for _, a := range assignments {
		info, ok := a.ClassID.Info()
		if !ok {
			continue
		}
		for _, spell := range spells {
			if !spell.HasKnownLevel() || spell.Level > a.Level {
				continue
			}
			if !spell.AvailableTo(info.Name) {
				continue
			}
			if _, dup := seen[spell.Title]; dup {
				continue
			}
			seen[spell.Title] = struct{}{}
			out = append(out, spell)
		}
	}

	sortByLevelThenTitle(out)
	return out
}

// AllSpells returns the full catalog for browsing, unknown levels included
func AllSpells(spells []*dnd5e.Spell) []*dnd5e.Spell {
	out := make([]*dnd5e.Spell, len(spells))
	copy(out, spells)
	return out
}

func sortByLevelThenTitle(spells []*dnd5e.Spell) {
	c := newTitleCollator()
	sort.SliceStable(spells, func(i, j int) bool {
		if spells[i].Level != spells[j].Level {
			return spells[i].Level < spells[j].Level
		}
		return c.CompareString(spells[i].Title, spells[j].Title) < 0
	})
}

// Collators are not safe for concurrent use, so each sort builds its own.
func newTitleCollator() *collate.Collator {
	return collate.New(language.English)
}
