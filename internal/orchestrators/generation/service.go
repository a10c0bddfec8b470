// Package generation implements the character generation service: the
// full deterministic pipeline from identity key to finalized character
// and placed inventory.
package generation

import (
	"context"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

// Service defines the character generation operations
type Service interface {
	// GenerateCharacter derives a character sheet from an identity key.
	// Pure given the catalog: the same key always yields the same sheet.
	GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error)

	// ListEquipmentChoices exposes a class's unresolved choice groups so
	// a caller can pick selections before finalizing
	ListEquipmentChoices(ctx context.Context, input *ListEquipmentChoicesInput) (*ListEquipmentChoicesOutput, error)

	// FinalizeCharacter runs the full pipeline through equipment
	// resolution, placement, and weight accounting, then persists the
	// record
	FinalizeCharacter(ctx context.Context, input *FinalizeCharacterInput) (*FinalizeCharacterOutput, error)

	// GetCharacter loads a previously finalized character
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
}

// GenerateCharacterInput defines the input for generating a character
type GenerateCharacterInput struct {
	IdentityKey string
}

// GenerateCharacterOutput defines the output for generating a character
type GenerateCharacterOutput struct {
	Character *hero.Character
}

// ListEquipmentChoicesInput defines the input for listing choices
type ListEquipmentChoicesInput struct {
	Class string
}

// ListEquipmentChoicesOutput defines the output for listing choices
type ListEquipmentChoicesOutput struct {
	Class  string
	Groups []catalog.ChoiceGroup
}

// FinalizeCharacterInput defines the input for finalizing a character
type FinalizeCharacterInput struct {
	IdentityKey string
	Selections  map[string]engine.Selection
}

// FinalizeCharacterOutput defines the output for finalizing a character
type FinalizeCharacterOutput struct {
	SaveID    string
	Character *hero.Character
	Inventory *hero.Inventory
	Overflow  []hero.ItemStack
	Weight    engine.WeightReport
}

// GetCharacterInput defines the input for fetching a character
type GetCharacterInput struct {
	IdentityKey string
}

// GetCharacterOutput defines the output for fetching a character
type GetCharacterOutput struct {
	SaveID    string
	Character *hero.Character
	Inventory *hero.Inventory
	Weight    engine.WeightReport
}
