package testutils

import (
	"github.com/KirkDiggler/spellbook/internal/catalog"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Aria"

// SpellEntries returns a small catalog dataset covering cantrips, every
// slot level up to 5th, pact-only spells and an entry with no level tag
func SpellEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Title:    "Fire Bolt",
			Tags:     []string{"Cantrips", "Artificer", "Sorcerer", "Wizard", "damage"},
			Contents: []string{"text | You hurl a mote of fire. A creature hit takes 1d10 fire damage."},
		},
		{
			Title:    "Light",
			Tags:     []string{"Cantrips", "Artificer", "Bard", "Cleric", "Sorcerer", "Wizard"},
			Contents: []string{"text | You touch one object that is no larger than 10 feet."},
		},
		{
			Title: "Sacred Flame",
			Tags:  []string{"Cantrips", "Cleric", "damage", "needs_save"},
			Contents: []string{
				"text | The target must succeed on a Dexterity saving throw or take 1d8 Radiant damage.",
			},
		},
		{
			Title:    "Magic Missile",
			Tags:     []string{"1st level", "Sorcerer", "Wizard", "damage"},
			Contents: []string{"text | Each dart hits a creature and deals 1d4 + 1 Force damage."},
		},
		{
			Title:    "Shield",
			Tags:     []string{"1st level", "Sorcerer", "Wizard"},
			Contents: []string{"text | An invisible barrier of magical force appears."},
		},
		{
			Title:    "Cure Wounds",
			Tags:     []string{"1st level", "Artificer", "Bard", "Cleric", "Druid", "Paladin", "Ranger"},
			Contents: []string{"text | A creature you touch regains hit points."},
		},
		{
			Title:    "Bless",
			Tags:     []string{"1st level", "Cleric", "Paladin", "concentration"},
			Contents: []string{"text | You bless up to three creatures of your choice."},
		},
		{
			Title:    "Hex",
			Tags:     []string{"1st level", "Warlock", "concentration"},
			Contents: []string{"text | You deal an extra 1d6 Necrotic damage to the target."},
		},
		{
			Title:    "Detect Magic",
			Tags:     []string{"1st level", "Bard", "Cleric", "Druid", "Paladin", "Ranger", "Sorcerer", "Wizard", "concentration", "ritual"},
			Contents: []string{"text | You sense the presence of magic within 30 feet of you."},
		},
		{
			Title:    "Misty Step",
			Tags:     []string{"2nd level", "Sorcerer", "Warlock", "Wizard"},
			Contents: []string{"text | You teleport up to 30 feet."},
		},
		{
			Title:    "Spiritual Weapon",
			Tags:     []string{"2nd level", "Cleric", "damage"},
			Contents: []string{"text | The weapon deals 1d8 + 3 Force damage."},
		},
		{
			Title: "Fireball",
			Tags:  []string{"3rd level", "Sorcerer", "Wizard", "damage", "needs_save"},
			Contents: []string{
				"property | Casting Time | 1 action",
				"property | Range | 150 feet",
				"property | Components | V, S, M",
				"property | Duration | Instantaneous",
				"text | Each creature in a 20-foot-radius sphere must make a Dexterity saving throw. A target takes 8d6 Fire damage on a failed save.",
				"section | At Higher Levels",
				"description | At Higher Levels | The damage increases by 1d6 for each slot level above 3rd.",
			},
		},
		{
			Title:    "Counterspell",
			Tags:     []string{"3rd level", "Sorcerer", "Warlock", "Wizard"},
			Contents: []string{"text | You attempt to interrupt a creature in the process of casting a spell."},
		},
		{
			Title:    "Hunger of Hadar",
			Tags:     []string{"3rd level", "Warlock", "concentration", "damage"},
			Contents: []string{"text | Creatures fully within the sphere take 2d6 Cold damage."},
		},
		{
			Title:    "Cone of Cold",
			Tags:     []string{"5th level", "Sorcerer", "Wizard", "damage", "needs_save"},
			Contents: []string{"text | Each creature must make a Constitution saving throw, taking 8d8 Cold damage."},
		},
		{
			Title:    "Homebrew Hex",
			Tags:     []string{"Warlock", "Wizard"},
			Contents: []string{"text | An unfinished spell."},
		},
	}
}

// TestCatalog returns the fixture dataset as a catalog
func TestCatalog() *catalog.Catalog {
	return catalog.New(SpellEntries())
}

// Titles returns spell titles in list order
func Titles(spells []*dnd5e.Spell) []string {
	out := make([]string, len(spells))
	for i, s := range spells {
		out[i] = s.Title
	}
	return out
}

// MustSpell returns a fixture spell by title and panics when it is missing
func MustSpell(title string) *dnd5e.Spell {
	spell, ok := TestCatalog().Get(title)
	if !ok {
		panic("unknown fixture spell " + title)
	}
	return spell
}
