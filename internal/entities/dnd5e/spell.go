package dnd5e

// LevelUnknown marks a spell whose level could not be parsed from its tags
const LevelUnknown = -1

// Spell is a catalog entry with its tag metadata projected into typed
// fields. Tags and Contents keep the raw dataset values.
type Spell struct {
	Title    string
	Tags     []string
	Contents []string

	// Level is 0 for cantrips, 1..9 for leveled spells, LevelUnknown otherwise
	Level int
	// Classes holds the class display names found in Tags
	Classes []string

	Concentration bool
	Ritual        bool
	NeedsSave     bool
	// Damage is the first dice expression in the contents, e.g. "8d6"
	Damage     string
	DamageType string
}

// HasKnownLevel reports whether the spell level was parsed
func (s *Spell) HasKnownLevel() bool {
	return s.Level != LevelUnknown
}

// HasTag reports whether the spell carries the exact tag
func (s *Spell) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AvailableTo reports whether the class display name is among the spell's
// tags
func (s *Spell) AvailableTo(className string) bool {
	return s.HasTag(className)
}

// Clone returns a deep copy
func (s *Spell) Clone() *Spell {
	if s == nil {
		return nil
	}
	out := *s
	out.Tags = append([]string(nil), s.Tags...)
	out.Contents = append([]string(nil), s.Contents...)
	out.Classes = append([]string(nil), s.Classes...)
	return &out
}

// SpellDetails is the structured view of a spell's content blocks. Fields
// the contents do not provide are left empty.
type SpellDetails struct {
	CastingTime  string
	Range        string
	Components   []string
	Duration     string
	Description  string
	Descriptions []string
	HigherLevel  string
}
