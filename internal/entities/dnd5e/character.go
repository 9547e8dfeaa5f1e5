package dnd5e

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the core.Entity type of a saved character
const EntityTypeCharacter = "character"

// ClassAssignment is one class a character has levels in
type ClassAssignment struct {
	ClassID ClassID
	Level   int
}

// ClampLevel bounds a class level to 1..20
func ClampLevel(level int) int {
	if level < MinClassLevel {
		return MinClassLevel
	}
	if level > MaxClassLevel {
		return MaxClassLevel
	}
	return level
}

// ParseLevel converts user input into a class level. Empty or unparseable
// input yields 1, numbers are clamped to 1..20.
func ParseLevel(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return MinClassLevel
	}
	return ClampLevel(n)
}

// AbilityScores holds the mental ability scores used for spellcasting
type AbilityScores struct {
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// DefaultAbilityScores returns every score at 10
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Score returns the score for an ability. AbilityNone returns false.
func (a AbilityScores) Score(ability Ability) (int, bool) {
	switch ability {
	case AbilityIntelligence:
		return a.Intelligence, true
	case AbilityWisdom:
		return a.Wisdom, true
	case AbilityCharisma:
		return a.Charisma, true
	default:
		return 0, false
	}
}

// Set applies user input to an ability. Empty input resets the score to
// 10, values in 1..30 are stored and anything else leaves the score
// unchanged. It reports whether the score changed.
func (a *AbilityScores) Set(ability Ability, input string) bool {
	var target *int
	switch ability {
	case AbilityIntelligence:
		target = &a.Intelligence
	case AbilityWisdom:
		target = &a.Wisdom
	case AbilityCharisma:
		target = &a.Charisma
	default:
		return false
	}

	input = strings.TrimSpace(input)
	if input == "" {
		changed := *target != DefaultAbilityScore
		*target = DefaultAbilityScore
		return changed
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < MinAbilityScore || n > MaxAbilityScore {
		return false
	}
	changed := *target != n
	*target = n
	return changed
}

// Character is a saved spellcaster. Name is the unique key.
type Character struct {
	Name          string
	Classes       []ClassAssignment
	AbilityScores AbilityScores
	AddedSpells   []*Spell
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character name
func (c *Character) GetID() string {
	return c.Name
}

// GetType returns the entity type
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// TotalLevel is the uncapped sum of all class levels
func (c *Character) TotalLevel() int {
	total := 0
	for _, a := range c.Classes {
		total += a.Level
	}
	return total
}

// Assignment returns the assignment for a class
func (c *Character) Assignment(id ClassID) (ClassAssignment, bool) {
	for _, a := range c.Classes {
		if a.ClassID == id {
			return a, true
		}
	}
	return ClassAssignment{}, false
}

// HasClass reports whether the character has levels in a class
func (c *Character) HasClass(id ClassID) bool {
	_, ok := c.Assignment(id)
	return ok
}

// Summary renders the classes as "Wizard (Lv5), Cleric (Lv1)"
func (c *Character) Summary() string {
	parts := make([]string, 0, len(c.Classes))
	for _, a := range c.Classes {
		parts = append(parts, fmt.Sprintf("%s (Lv%d)", a.ClassID, a.Level))
	}
	return strings.Join(parts, ", ")
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := &Character{
		Name:          c.Name,
		Classes:       append([]ClassAssignment(nil), c.Classes...),
		AbilityScores: c.AbilityScores,
	}
	if c.AddedSpells != nil {
		out.AddedSpells = make([]*Spell, len(c.AddedSpells))
		for i, s := range c.AddedSpells {
			out.AddedSpells[i] = s.Clone()
		}
	}
	return out
}
