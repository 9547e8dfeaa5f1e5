package dnd5e

import "sort"

// SlotPool tracks expended slots keyed by spell level (or pact slot
// level). true means expended. A missing level or a short sequence means
// the remaining slots are unused.
type SlotPool map[int][]bool

// Clone returns a deep copy. A nil pool clones to an empty pool.
func (p SlotPool) Clone() SlotPool {
	out := make(SlotPool, len(p))
	for level, flags := range p {
		out[level] = append([]bool{}, flags...)
	}
	return out
}

// Levels returns the keyed levels in ascending order
func (p SlotPool) Levels() []int {
	levels := make([]int, 0, len(p))
	for level := range p {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// IsExpended reports the flag at a position, treating missing entries as
// unused
func (p SlotPool) IsExpended(level, index int) bool {
	flags := p[level]
	if index < 0 || index >= len(flags) {
		return false
	}
	return flags[index]
}

// Expended counts the expended flags at a level
func (p SlotPool) Expended(level int) int {
	n := 0
	for _, used := range p[level] {
		if used {
			n++
		}
	}
	return n
}
