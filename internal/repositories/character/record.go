package character

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/spellbook/internal/catalog"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// record is the persisted JSON shape. Field names are shared with saves
// made by earlier versions of the builder.
type record struct {
	CharacterName    string               `json:"characterName"`
	SelectedClassIDs []int                `json:"selectedClassIds"`
	ClassLevels      map[int]int          `json:"classLevels"`
	AbilityScores    *dnd5e.AbilityScores `json:"abilityScores,omitempty"`
	AddedSpells      []spellRecord        `json:"addedSpells"`
	SavedAt          *time.Time           `json:"savedAt,omitempty"`
}

var _ core.Entity = record{}

// GetID returns the character name the record is stored under
func (r record) GetID() string {
	return r.CharacterName
}

// GetType returns the entity type
func (r record) GetType() string {
	return dnd5e.EntityTypeCharacter
}

type spellRecord struct {
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Contents   []string `json:"contents"`
	SpellLevel int      `json:"spellLevel"`
}

func toRecord(c *dnd5e.Character, savedAt time.Time) record {
	r := record{
		CharacterName:    c.Name,
		SelectedClassIDs: make([]int, 0, len(c.Classes)),
		ClassLevels:      make(map[int]int, len(c.Classes)),
		AddedSpells:      make([]spellRecord, 0, len(c.AddedSpells)),
	}
	for _, a := range c.Classes {
		r.SelectedClassIDs = append(r.SelectedClassIDs, int(a.ClassID))
		r.ClassLevels[int(a.ClassID)] = a.Level
	}
	scores := c.AbilityScores
	r.AbilityScores = &scores
	for _, s := range c.AddedSpells {
		if s == nil {
			continue
		}
		r.AddedSpells = append(r.AddedSpells, spellRecord{
			Title:      s.Title,
			Tags:       nonNil(s.Tags),
			Contents:   nonNil(s.Contents),
			SpellLevel: s.Level,
		})
	}
	if !savedAt.IsZero() {
		t := savedAt.UTC()
		r.SavedAt = &t
	}
	return r
}

// fromRecord rebuilds a character, filling the gaps older saves leave:
// missing levels default to 1 and missing ability scores to 10.
func fromRecord(r record) *SavedCharacter {
	c := &dnd5e.Character{
		Name:          r.CharacterName,
		AbilityScores: dnd5e.DefaultAbilityScores(),
	}

	seen := make(map[int]bool, len(r.SelectedClassIDs))
	for _, id := range r.SelectedClassIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		level, ok := r.ClassLevels[id]
		if !ok {
			level = dnd5e.MinClassLevel
		}
		c.Classes = append(c.Classes, dnd5e.ClassAssignment{
			ClassID: dnd5e.ClassID(id),
			Level:   dnd5e.ClampLevel(level),
		})
	}

	if r.AbilityScores != nil {
		c.AbilityScores = dnd5e.AbilityScores{
			Intelligence: scoreOrDefault(r.AbilityScores.Intelligence),
			Wisdom:       scoreOrDefault(r.AbilityScores.Wisdom),
			Charisma:     scoreOrDefault(r.AbilityScores.Charisma),
		}
	}

	for _, s := range r.AddedSpells {
		spell := catalog.Project(catalog.Entry{Title: s.Title, Tags: s.Tags, Contents: s.Contents})
		spell.Level = s.SpellLevel
		c.AddedSpells = append(c.AddedSpells, spell)
	}

	out := &SavedCharacter{Character: c}
	if r.SavedAt != nil {
		out.SavedAt = *r.SavedAt
	}
	return out
}

func scoreOrDefault(score int) int {
	if score < dnd5e.MinAbilityScore || score > dnd5e.MaxAbilityScore {
		return dnd5e.DefaultAbilityScore
	}
	return score
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
