package engine

import (
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/heroforge/hero-api/internal/errors"
)

// SeededRoller is a dice.Roller backed by a seeded PRNG stream. One
// roller serves one full generation run; draw order is fixed by the
// pipeline, which is what makes runs reproducible.
//
// Not safe for concurrent use. Runs for different identity keys get
// their own rollers.
type SeededRoller struct {
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller seeded with an identity-derived seed
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // determinism is the point
	}
}

// Roll returns a uniform value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = roll
	}
	return results, nil
}
