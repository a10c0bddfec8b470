package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/errors"
)

func TestSampleWeighted(t *testing.T) {
	table := catalog.WeightTable{
		{Label: "common", Weight: 70},
		{Label: "uncommon", Weight: 25},
		{Label: "rare", Weight: 5},
	}

	t.Run("walks the table in declared order", func(t *testing.T) {
		// Roll 1 maps to remainder 0, the first entry
		label, err := engine.SampleWeighted(&scriptRoller{values: []int{1}}, table)
		require.NoError(t, err)
		assert.Equal(t, "common", label)

		// Roll 70 is the last draw inside the first band
		label, err = engine.SampleWeighted(&scriptRoller{values: []int{70}}, table)
		require.NoError(t, err)
		assert.Equal(t, "common", label)

		// Roll 71 crosses into the second band
		label, err = engine.SampleWeighted(&scriptRoller{values: []int{71}}, table)
		require.NoError(t, err)
		assert.Equal(t, "uncommon", label)

		// Roll 96 is the first draw of the last band
		label, err = engine.SampleWeighted(&scriptRoller{values: []int{96}}, table)
		require.NoError(t, err)
		assert.Equal(t, "rare", label)

		// Roll 100 is the top of the range
		label, err = engine.SampleWeighted(&scriptRoller{values: []int{100}}, table)
		require.NoError(t, err)
		assert.Equal(t, "rare", label)
	})

	t.Run("falls back to the last entry on overrun", func(t *testing.T) {
		// A roller violating its [1, total] contract must not panic
		label, err := engine.SampleWeighted(&scriptRoller{values: []int{105}}, table)
		require.NoError(t, err)
		assert.Equal(t, "rare", label)
	})

	t.Run("skips zero-weight entries", func(t *testing.T) {
		withZero := catalog.WeightTable{
			{Label: "never", Weight: 0},
			{Label: "always", Weight: 10},
		}

		for roll := 1; roll <= 10; roll++ {
			label, err := engine.SampleWeighted(&scriptRoller{values: []int{roll}}, withZero)
			require.NoError(t, err)
			assert.Equal(t, "always", label)
		}
	})

	t.Run("empty table is corrupt data", func(t *testing.T) {
		_, err := engine.SampleWeighted(&scriptRoller{}, catalog.WeightTable{})
		require.Error(t, err)
		assert.True(t, errors.IsCorruptData(err))
	})

	t.Run("non-positive total is corrupt data", func(t *testing.T) {
		_, err := engine.SampleWeighted(&scriptRoller{}, catalog.WeightTable{
			{Label: "a", Weight: 0},
			{Label: "b", Weight: 0},
		})
		require.Error(t, err)
		assert.True(t, errors.IsCorruptData(err))
	})

	t.Run("frequencies track the weights", func(t *testing.T) {
		reg := testRegistry(t)
		races := reg.Races()
		total := races.Total()
		require.Equal(t, 100, total)

		roller := engine.NewSeededRoller(42)
		const draws = 100000

		counts := make(map[string]int)
		for i := 0; i < draws; i++ {
			label, err := engine.SampleWeighted(roller, races)
			require.NoError(t, err)
			counts[label]++
		}

		for _, entry := range races {
			expected := float64(entry.Weight) / float64(total)
			observed := float64(counts[entry.Label]) / float64(draws)
			assert.InDelta(t, expected, observed, 0.01, "label %s", entry.Label)
		}
	})

	t.Run("same seed always draws the same race", func(t *testing.T) {
		reg := testRegistry(t)

		seed, err := engine.SeedFromIdentityKey(testIdentityKey)
		require.NoError(t, err)

		first, err := engine.SampleWeighted(engine.NewSeededRoller(seed), reg.Races())
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			label, err := engine.SampleWeighted(engine.NewSeededRoller(seed), reg.Races())
			require.NoError(t, err)
			assert.Equal(t, first, label)
		}
	})
}
