package engine

import (
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// ProficiencyBonus by total character level
func ProficiencyBonus(totalLevel int) int {
	switch {
	case totalLevel < 5:
		return 2
	case totalLevel < 9:
		return 3
	case totalLevel < 13:
		return 4
	case totalLevel < 17:
		return 5
	default:
		return 6
	}
}

// AbilityModifier is floor((score-10)/2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// TotalCharacterLevel sums the class levels without a cap
func TotalCharacterLevel(assignments []dnd5e.ClassAssignment) int {
	total := 0
	for _, a := range assignments {
		total += a.Level
	}
	return total
}

// SpellAttackBonus is the ability modifier plus proficiency. The boolean
// is false for classes without a spellcasting ability.
func SpellAttackBonus(id dnd5e.ClassID, scores dnd5e.AbilityScores, totalLevel int) (int, bool) {
	info, ok := id.Info()
	if !ok {
		return 0, false
	}
	score, ok := scores.Score(info.Ability)
	if !ok {
		return 0, false
	}
	return AbilityModifier(score) + ProficiencyBonus(totalLevel), true
}

// SpellSaveDC is 8 plus the spell attack bonus
func SpellSaveDC(id dnd5e.ClassID, scores dnd5e.AbilityScores, totalLevel int) (int, bool) {
	bonus, ok := SpellAttackBonus(id, scores, totalLevel)
	if !ok {
		return 0, false
	}
	return 8 + bonus, true
}
