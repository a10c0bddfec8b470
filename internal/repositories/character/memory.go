package character

import (
	"context"
	"sync"

	"github.com/heroforge/hero-api/internal/errors"
	"github.com/heroforge/hero-api/internal/pkg/clock"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
	clock   clock.Clock
}

// NewMemory creates an in-memory character repository. It backs the
// one-shot CLI and is handy in tests that do not need Redis.
func NewMemory(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &memoryRepository{
		records: make(map[string]Record),
		clock:   clk,
	}
}

func (r *memoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}
	if input.Record.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Record.Inventory == nil {
		return nil, errors.InvalidArgument(errInventoryNil)
	}

	record := *input.Record
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.Pubkey]; exists {
		return nil, errors.AlreadyExistsf("character for pubkey %s already exists", record.Pubkey)
	}
	r.records[record.Pubkey] = record

	return &SaveOutput{Record: &record}, nil
}

func (r *memoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[input.Pubkey]
	if !ok {
		return nil, errors.NotFoundf("character for pubkey %s not found", input.Pubkey)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *memoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[input.Pubkey]; !ok {
		return nil, errors.NotFoundf("character for pubkey %s not found", input.Pubkey)
	}
	delete(r.records, input.Pubkey)

	return &DeleteOutput{}, nil
}
