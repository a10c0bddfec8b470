package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/errors"
)

// SampleWeighted draws one label from a weight table with probability
// proportional to its weight: a uniform draw in [0, total) followed by
// a walk over the entries in declared order. The last entry is the
// fallback should the walk ever overrun the table.
func SampleWeighted(roller dice.Roller, table catalog.WeightTable) (string, error) {
	if len(table) == 0 {
		return "", errors.CorruptData("weight table is empty")
	}

	total := table.Total()
	if total <= 0 {
		return "", errors.CorruptDataf("weight table total must be positive, got %d", total)
	}

	roll, err := roller.Roll(total)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw from weight table")
	}

	// Roll is 1..total; the walk wants [0, total)
	remainder := roll - 1
	for _, entry := range table {
		remainder -= entry.Weight
		if remainder < 0 {
			return entry.Label, nil
		}
	}

	return table[len(table)-1].Label, nil
}
