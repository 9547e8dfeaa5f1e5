// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder creates a new builder with default ability scores
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &dnd5e.Character{
			Name:          "Test Caster",
			AbilityScores: dnd5e.DefaultAbilityScores(),
		},
	}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass adds a class assignment
func (b *CharacterBuilder) WithClass(id dnd5e.ClassID, level int) *CharacterBuilder {
	b.character.Classes = append(b.character.Classes, dnd5e.ClassAssignment{ClassID: id, Level: level})
	return b
}

// WithAbilityScores sets the spellcasting ability scores
func (b *CharacterBuilder) WithAbilityScores(intelligence, wisdom, charisma int) *CharacterBuilder {
	b.character.AbilityScores = dnd5e.AbilityScores{
		Intelligence: intelligence,
		Wisdom:       wisdom,
		Charisma:     charisma,
	}
	return b
}

// WithSpells appends added spells
func (b *CharacterBuilder) WithSpells(spells ...*dnd5e.Spell) *CharacterBuilder {
	b.character.AddedSpells = append(b.character.AddedSpells, spells...)
	return b
}

// AsWizard configures a level 5 wizard with 16 intelligence
func (b *CharacterBuilder) AsWizard() *CharacterBuilder {
	return b.WithClass(dnd5e.ClassWizard, 5).WithAbilityScores(16, 10, 10)
}

// AsWarlock configures a level 5 warlock with 16 charisma
func (b *CharacterBuilder) AsWarlock() *CharacterBuilder {
	return b.WithClass(dnd5e.ClassWarlock, 5).WithAbilityScores(10, 10, 16)
}

// Build returns the character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character.Clone()
}
