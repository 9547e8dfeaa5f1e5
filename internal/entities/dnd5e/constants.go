package dnd5e

// Class identifiers. Values match the numeric ids persisted in
// selectedClassIds by earlier versions of the character builder.
const (
	ClassArtificer ClassID = 0
	ClassBarbarian ClassID = 1
	ClassBard      ClassID = 2
	ClassCleric    ClassID = 3
	ClassDruid     ClassID = 4
	ClassFighter   ClassID = 5
	ClassMonk      ClassID = 6
	ClassPaladin   ClassID = 7
	ClassRanger    ClassID = 8
	ClassRogue     ClassID = 9
	ClassSorcerer  ClassID = 10
	ClassWarlock   ClassID = 11
	ClassWizard    ClassID = 12
)

// Spellcasting abilities. Only the three mental abilities are tracked.
const (
	AbilityNone         Ability = ""
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Caster progressions select the slot table a class uses and how much it
// contributes to a multiclass caster level.
const (
	CasterFull        CasterProgression = "full"
	CasterHalf        CasterProgression = "half"
	CasterHalfRoundUp CasterProgression = "half_round_up"
	CasterThird       CasterProgression = "third"
	CasterPact        CasterProgression = "pact"
	CasterNone        CasterProgression = "none"
)

// Level bounds
const (
	MinClassLevel    = 1
	MaxClassLevel    = 20
	MaxSpellLevel    = 9
	MaxPactSlotLevel = 5

	MinAbilityScore     = 1
	MaxAbilityScore     = 30
	DefaultAbilityScore = 10
)

// Spell tag vocabulary used by the catalog dataset
const (
	TagCantrips      = "Cantrips"
	TagConcentration = "concentration"
	TagRitual        = "ritual"
	TagDamage        = "damage"
	TagNeedsSave     = "needs_save"
)

// Content block markers used by the catalog dataset
const (
	BlockProperty    = "property"
	BlockText        = "text"
	BlockBullet      = "bullet"
	BlockSection     = "section"
	BlockDescription = "description"
	BlockDamage      = "damage"
)

// DamageTypes lists the damage types recognised in spell text, in lookup order
var DamageTypes = []string{
	"Acid",
	"Bludgeoning",
	"Cold",
	"Fire",
	"Force",
	"Lightning",
	"Necrotic",
	"Piercing",
	"Poison",
	"Psychic",
	"Radiant",
	"Slashing",
	"Thunder",
}
