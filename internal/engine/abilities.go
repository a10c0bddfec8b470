package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
	"github.com/heroforge/hero-api/internal/errors"
)

const (
	abilityDiceCount = 4
	abilityDieSize   = 6
)

// RollAbilityScores rolls the six ability scores in canonical order:
// each is the sum of the best three of four d6, so every score lands in
// [3, 18]. The order is fixed because each roll consumes from the
// shared stream.
func RollAbilityScores(roller dice.Roller) (hero.AbilityScores, error) {
	var scores hero.AbilityScores

	for _, ability := range hero.AbilityOrder {
		rolls, err := roller.RollN(abilityDiceCount, abilityDieSize)
		if err != nil {
			return hero.AbilityScores{}, errors.Wrapf(err, "failed to roll %s", ability)
		}

		scores.SetScore(ability, sumDropLowest(rolls))
	}

	return scores, nil
}

// sumDropLowest sums all rolls except the single lowest one
func sumDropLowest(rolls []int) int32 {
	sum := 0
	lowest := rolls[0]
	for _, roll := range rolls {
		sum += roll
		if roll < lowest {
			lowest = roll
		}
	}
	return int32(sum - lowest)
}

// DeriveVitals computes hit points and mana from the final ability
// scores and the class's stats row. Non-casters get zero mana; casters
// get their casting-stat modifier plus one, floored at zero.
func DeriveVitals(reg *catalog.Registry, class string, scores hero.AbilityScores) (hp, mana int32) {
	stats := reg.ClassStats(class)

	hitDie := stats.HitDie
	if hitDie <= 0 {
		hitDie = catalog.DefaultHitDie
	}
	hp = hitDie + hero.Modifier(scores.Constitution)

	if stats.CastingAbility != "" {
		mana = hero.Modifier(scores.Score(stats.CastingAbility)) + 1
		if mana < 0 {
			mana = 0
		}
	}

	return hp, mana
}
