// Package character provides the interface for finalized character
// persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/heroforge/hero-api/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/heroforge/hero-api/internal/entities/hero"
)

// Record is the stored form of a finalized character: the generated
// sheet plus its resolved inventory
type Record struct {
	SaveID    string          `json:"save_id"`
	Pubkey    string          `json:"pubkey"`
	Character *hero.Character `json:"character"`
	Inventory *hero.Inventory `json:"inventory"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repository defines the interface for character persistence
type Repository interface {
	// Save stores a finalized character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the pubkey already has a character
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a finalized character by pubkey
	// Returns errors.InvalidArgument for empty pubkeys
	// Returns errors.NotFound if no character exists for the pubkey
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a finalized character by pubkey
	// Returns errors.InvalidArgument for empty pubkeys
	// Returns errors.NotFound if no character exists for the pubkey
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Record *Record
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Record *Record
}

// GetInput defines the input for getting a character
type GetInput struct {
	Pubkey string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Pubkey string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
