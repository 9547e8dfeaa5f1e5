package dnd5e

// PactSlots is a warlock pact magic table entry. Every pact slot is cast
// at SlotLevel.
type PactSlots struct {
	SlotCount int `json:"slotCount"`
	SlotLevel int `json:"slotLevel"`
}

// Full caster progression. The multiclass spellcaster table has the same
// values indexed by effective caster level.
var fullCasterSlots = map[int][]int{
	1:  {2},
	2:  {3},
	3:  {4, 2},
	4:  {4, 3},
	5:  {4, 3, 2},
	6:  {4, 3, 3},
	7:  {4, 3, 3, 1},
	8:  {4, 3, 3, 2},
	9:  {4, 3, 3, 3, 1},
	10: {4, 3, 3, 3, 2},
	11: {4, 3, 3, 3, 2, 1},
	12: {4, 3, 3, 3, 2, 1},
	13: {4, 3, 3, 3, 2, 1, 1},
	14: {4, 3, 3, 3, 2, 1, 1},
	15: {4, 3, 3, 3, 2, 1, 1, 1},
	16: {4, 3, 3, 3, 2, 1, 1, 1},
	17: {4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// Paladin and Ranger. No slots at level 1.
var halfCasterSlots = map[int][]int{
	2:  {2},
	3:  {3},
	4:  {3},
	5:  {4, 2},
	6:  {4, 2},
	7:  {4, 3},
	8:  {4, 3},
	9:  {4, 3, 2},
	10: {4, 3, 2},
	11: {4, 3, 3},
	12: {4, 3, 3},
	13: {4, 3, 3, 1},
	14: {4, 3, 3, 1},
	15: {4, 3, 3, 2},
	16: {4, 3, 3, 2},
	17: {4, 3, 3, 3, 1},
	18: {4, 3, 3, 3, 1},
	19: {4, 3, 3, 3, 2},
	20: {4, 3, 3, 3, 2},
}

// Artificer casts from level 1, otherwise it follows the half caster table.
var halfRoundUpCasterSlots = withLevel(halfCasterSlots, 1, []int{2})

// Eldritch Knight and Arcane Trickster
var thirdCasterSlots = map[int][]int{
	3:  {2},
	4:  {3},
	5:  {3},
	6:  {3},
	7:  {4, 2},
	8:  {4, 2},
	9:  {4, 2},
	10: {4, 3},
	11: {4, 3},
	12: {4, 3},
	13: {4, 3, 2},
	14: {4, 3, 2},
	15: {4, 3, 2},
	16: {4, 3, 3},
	17: {4, 3, 3},
	18: {4, 3, 3},
	19: {4, 3, 3, 1},
	20: {4, 3, 3, 1},
}

var pactSlots = map[int]PactSlots{
	1:  {SlotCount: 1, SlotLevel: 1},
	2:  {SlotCount: 2, SlotLevel: 1},
	3:  {SlotCount: 2, SlotLevel: 2},
	4:  {SlotCount: 2, SlotLevel: 2},
	5:  {SlotCount: 2, SlotLevel: 3},
	6:  {SlotCount: 2, SlotLevel: 3},
	7:  {SlotCount: 2, SlotLevel: 4},
	8:  {SlotCount: 2, SlotLevel: 4},
	9:  {SlotCount: 2, SlotLevel: 5},
	10: {SlotCount: 2, SlotLevel: 5},
	11: {SlotCount: 3, SlotLevel: 5},
	12: {SlotCount: 3, SlotLevel: 5},
	13: {SlotCount: 3, SlotLevel: 5},
	14: {SlotCount: 3, SlotLevel: 5},
	15: {SlotCount: 3, SlotLevel: 5},
	16: {SlotCount: 3, SlotLevel: 5},
	17: {SlotCount: 4, SlotLevel: 5},
	18: {SlotCount: 4, SlotLevel: 5},
	19: {SlotCount: 4, SlotLevel: 5},
	20: {SlotCount: 4, SlotLevel: 5},
}

var slotTables = map[CasterProgression]map[int][]int{
	CasterFull:        fullCasterSlots,
	CasterHalf:        halfCasterSlots,
	CasterHalfRoundUp: halfRoundUpCasterSlots,
	CasterThird:       thirdCasterSlots,
}

func withLevel(table map[int][]int, level int, slots []int) map[int][]int {
	out := make(map[int][]int, len(table)+1)
	for k, v := range table {
		out[k] = v
	}
	out[level] = slots
	return out
}

// SlotsForProgression returns the standard slot counts for a progression
// at the given level. Index 0 holds spell level 1. Levels outside the
// table, pact casters and non-casters yield an empty slice.
func SlotsForProgression(progression CasterProgression, level int) []int {
	table, ok := slotTables[progression]
	if !ok {
		return []int{}
	}
	slots, ok := table[level]
	if !ok {
		return []int{}
	}
	out := make([]int, len(slots))
	copy(out, slots)
	return out
}

// SlotsForClass returns the standard slot counts of a single class at the
// given level. Unknown classes yield an empty slice.
func SlotsForClass(id ClassID, level int) []int {
	info, ok := id.Info()
	if !ok {
		return []int{}
	}
	return SlotsForProgression(info.Progression, level)
}

// MulticlassSlots returns the multiclass spellcaster table row for an
// effective caster level.
func MulticlassSlots(effectiveLevel int) []int {
	return SlotsForProgression(CasterFull, effectiveLevel)
}

// PactSlotsForLevel returns the pact magic entry for a warlock level. The
// boolean is false when the level is outside 1..20.
func PactSlotsForLevel(level int) (PactSlots, bool) {
	entry, ok := pactSlots[level]
	return entry, ok
}

// SlotCount returns the number of slots at a 1-based spell level within a
// slot count row, or zero when the row has no such level.
func SlotCount(row []int, spellLevel int) int {
	if spellLevel < 1 || spellLevel > len(row) {
		return 0
	}
	return row[spellLevel-1]
}
