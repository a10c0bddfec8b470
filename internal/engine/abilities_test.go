package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

func TestRollAbilityScores(t *testing.T) {
	t.Run("sums the best three of four", func(t *testing.T) {
		// Six abilities, four d6 each, in canonical order
		roller := &scriptRoller{values: []int{
			6, 5, 4, 1, // strength: drop the 1 -> 15
			1, 1, 1, 1, // dexterity: floor -> 3
			6, 6, 6, 6, // constitution: ceiling -> 18
			2, 3, 4, 5, // intelligence: drop the 2 -> 12
			4, 4, 1, 4, // wisdom: drop the 1 -> 12
			3, 3, 3, 2, // charisma: drop the 2 -> 9
		}}

		scores, err := engine.RollAbilityScores(roller)
		require.NoError(t, err)

		assert.Equal(t, int32(15), scores.Strength)
		assert.Equal(t, int32(3), scores.Dexterity)
		assert.Equal(t, int32(18), scores.Constitution)
		assert.Equal(t, int32(12), scores.Intelligence)
		assert.Equal(t, int32(12), scores.Wisdom)
		assert.Equal(t, int32(9), scores.Charisma)
	})

	t.Run("every score lands in 3 to 18", func(t *testing.T) {
		for seed := int64(0); seed < 200; seed++ {
			scores, err := engine.RollAbilityScores(engine.NewSeededRoller(seed))
			require.NoError(t, err)

			for _, ability := range hero.AbilityOrder {
				score := scores.Score(ability)
				assert.GreaterOrEqual(t, score, int32(3))
				assert.LessOrEqual(t, score, int32(18))
			}
		}
	})

	t.Run("same seed rolls the same scores", func(t *testing.T) {
		first, err := engine.RollAbilityScores(engine.NewSeededRoller(7))
		require.NoError(t, err)
		second, err := engine.RollAbilityScores(engine.NewSeededRoller(7))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestDeriveVitals(t *testing.T) {
	reg := testRegistry(t)

	scores := hero.AbilityScores{
		Strength:     14,
		Dexterity:    12,
		Constitution: 16,
		Intelligence: 15,
		Wisdom:       10,
		Charisma:     8,
	}

	t.Run("non-caster gets zero mana", func(t *testing.T) {
		hp, mana := engine.DeriveVitals(reg, "Fighter", scores)

		// d10 hit die plus +3 constitution modifier
		assert.Equal(t, int32(13), hp)
		assert.Equal(t, int32(0), mana)
	})

	t.Run("caster mana is casting modifier plus one", func(t *testing.T) {
		hp, mana := engine.DeriveVitals(reg, "Wizard", scores)

		// d6 hit die plus +3 constitution modifier
		assert.Equal(t, int32(9), hp)
		// +2 intelligence modifier plus one
		assert.Equal(t, int32(3), mana)
	})

	t.Run("caster mana floors at zero", func(t *testing.T) {
		dull := scores
		dull.Intelligence = 4

		_, mana := engine.DeriveVitals(reg, "Wizard", dull)
		assert.Equal(t, int32(0), mana)
	})

	t.Run("negative constitution modifier lowers hit points", func(t *testing.T) {
		frail := scores
		frail.Constitution = 6

		hp, _ := engine.DeriveVitals(reg, "Fighter", frail)
		assert.Equal(t, int32(8), hp)
	})

	t.Run("unknown class falls back to the default hit die", func(t *testing.T) {
		hp, mana := engine.DeriveVitals(reg, "Mystery", scores)

		assert.Equal(t, int32(11), hp)
		assert.Equal(t, int32(0), mana)
	})
}

func TestModifier(t *testing.T) {
	// Integer division truncates toward zero, so 9 maps to 0
	cases := map[int32]int32{
		3: -3, 4: -3, 6: -2, 8: -1, 9: 0,
		10: 0, 11: 0, 12: 1, 14: 2, 16: 3, 18: 4,
	}
	for score, want := range cases {
		assert.Equal(t, want, hero.Modifier(score), "score %d", score)
	}
}
