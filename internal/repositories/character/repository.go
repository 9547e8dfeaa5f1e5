// Package character persists saved characters and their slot pools
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/spellbook/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

// Repository defines the interface for character persistence
type Repository interface {
	// List returns every saved character in save order
	// Malformed stored data yields an empty list, never an error
	// Returns errors.Unavailable or errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get returns one character and its slot pools
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no character has the name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save overwrites the character with the same name, or appends it, and
	// writes both slot pools in the same atomic batch
	// Returns errors.InvalidArgument for an empty name
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the character record and both slot pools
	// Returns errors.NotFound if no character has the name
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// LoadSlots returns the slot pools saved under a name, empty when absent
	LoadSlots(ctx context.Context, input LoadSlotsInput) (*LoadSlotsOutput, error)

	// Check reports stored data that reads silently skip, and repairs it
	// when input.Fix is set
	Check(ctx context.Context, input CheckInput) (*CheckOutput, error)
}

// SavedCharacter is a list entry
type SavedCharacter struct {
	Character *dnd5e.Character
	// SavedAt is zero for records written before timestamps were stored
	SavedAt time.Time
}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*SavedCharacter
}

// GetInput defines the input for getting a character
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *SavedCharacter
	Standard  dnd5e.SlotPool
	Pact      dnd5e.SlotPool
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *dnd5e.Character
	Standard  dnd5e.SlotPool
	Pact      dnd5e.SlotPool
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	// Created is false when an existing record was overwritten
	Created bool
	SavedAt time.Time
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// LoadSlotsInput defines the input for loading slot pools
type LoadSlotsInput struct {
	Name string
}

// LoadSlotsOutput defines the output for loading slot pools
type LoadSlotsOutput struct {
	Standard dnd5e.SlotPool
	Pact     dnd5e.SlotPool
}

// CheckInput defines the input for checking stored data
type CheckInput struct {
	Fix bool
}

// Issue is one problem found under a key
type Issue struct {
	Key     string `json:"key" yaml:"key"`
	Problem string `json:"problem" yaml:"problem"`
}

// CheckOutput defines the output for checking stored data
type CheckOutput struct {
	// Checked counts the keys that were present and inspected
	Checked int     `json:"checked" yaml:"checked"`
	Issues  []Issue `json:"issues" yaml:"issues"`
	Fixed   bool    `json:"fixed" yaml:"fixed"`
}
