package dnd5e

import (
	"sort"
	"strconv"
	"strings"
)

// ClassID identifies a character class
type ClassID int

// Ability names a spellcasting ability score
type Ability string

// CasterProgression tags how a class gains spell slots
type CasterProgression string

// ClassInfo is the registry entry for a class
type ClassInfo struct {
	ID          ClassID
	Name        string
	Ability     Ability
	Progression CasterProgression
	// Selectable marks the classes offered by the character builder
	Selectable bool
}

// IsCaster reports whether the class has a spellcasting ability
func (c ClassInfo) IsCaster() bool {
	return c.Ability != AbilityNone
}

var classRegistry = map[ClassID]ClassInfo{
	ClassArtificer: {ID: ClassArtificer, Name: "Artificer", Ability: AbilityIntelligence, Progression: CasterHalfRoundUp, Selectable: true},
	ClassBarbarian: {ID: ClassBarbarian, Name: "Barbarian", Ability: AbilityNone, Progression: CasterNone},
	ClassBard:      {ID: ClassBard, Name: "Bard", Ability: AbilityCharisma, Progression: CasterFull, Selectable: true},
	ClassCleric:    {ID: ClassCleric, Name: "Cleric", Ability: AbilityWisdom, Progression: CasterFull, Selectable: true},
	ClassDruid:     {ID: ClassDruid, Name: "Druid", Ability: AbilityWisdom, Progression: CasterFull, Selectable: true},
	// Fighter and Rogue only cast through their Eldritch Knight and Arcane
	// Trickster subclasses, so they count as third casters with no ability.
	ClassFighter:  {ID: ClassFighter, Name: "Fighter", Ability: AbilityNone, Progression: CasterThird},
	ClassMonk:     {ID: ClassMonk, Name: "Monk", Ability: AbilityNone, Progression: CasterNone},
	ClassPaladin:  {ID: ClassPaladin, Name: "Paladin", Ability: AbilityCharisma, Progression: CasterHalf, Selectable: true},
	ClassRanger:   {ID: ClassRanger, Name: "Ranger", Ability: AbilityWisdom, Progression: CasterHalf},
	ClassRogue:    {ID: ClassRogue, Name: "Rogue", Ability: AbilityNone, Progression: CasterThird},
	ClassSorcerer: {ID: ClassSorcerer, Name: "Sorcerer", Ability: AbilityCharisma, Progression: CasterFull, Selectable: true},
	ClassWarlock:  {ID: ClassWarlock, Name: "Warlock", Ability: AbilityCharisma, Progression: CasterPact, Selectable: true},
	ClassWizard:   {ID: ClassWizard, Name: "Wizard", Ability: AbilityIntelligence, Progression: CasterFull, Selectable: true},
}

// String returns the display name of the class, or its numeric id when unknown
func (id ClassID) String() string {
	if info, ok := classRegistry[id]; ok {
		return info.Name
	}
	return strconv.Itoa(int(id))
}

// Info returns the registry entry for the class
func (id ClassID) Info() (ClassInfo, bool) {
	info, ok := classRegistry[id]
	return info, ok
}

// ClassByID looks up a class by id
func ClassByID(id ClassID) (ClassInfo, bool) {
	return id.Info()
}

// ClassByName looks up a class by display name, ignoring case and
// surrounding whitespace
func ClassByName(name string) (ClassInfo, bool) {
	name = strings.TrimSpace(name)
	for _, info := range classRegistry {
		if strings.EqualFold(info.Name, name) {
			return info, true
		}
	}
	return ClassInfo{}, false
}

// SpellcastingAbility returns the ability used by the named class.
// Unknown classes and non-casters return AbilityNone.
func SpellcastingAbility(className string) Ability {
	info, ok := ClassByName(className)
	if !ok {
		return AbilityNone
	}
	return info.Ability
}

// Classes returns every registered class ordered by id
func Classes() []ClassInfo {
	out := make([]ClassInfo, 0, len(classRegistry))
	for _, info := range classRegistry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SelectableClasses returns the classes the builder offers, ordered by id
func SelectableClasses() []ClassInfo {
	var out []ClassInfo
	for _, info := range Classes() {
		if info.Selectable {
			out = append(out, info)
		}
	}
	return out
}

// ClassNames returns the display names of every registered class
func ClassNames() []string {
	classes := Classes()
	names := make([]string, len(classes))
	for i, info := range classes {
		names[i] = info.Name
	}
	return names
}
