package engine

import (
	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

// Weight accounting constants. Gold converts to carried weight at a
// fixed ratio; capacity scales linearly with Strength.
const (
	GoldWeightRatio     = 0.02
	CapacityPerStrength = 5.0
)

// EncumbranceLevel is the derived load category for a character
type EncumbranceLevel string

// Encumbrance bands, by percentage of capacity
const (
	EncumbranceLight      EncumbranceLevel = "light"      // 0-50%
	EncumbranceNormal     EncumbranceLevel = "normal"     // 51-100%
	EncumbranceOverweight EncumbranceLevel = "overweight" // 101-150%
	EncumbranceEncumbered EncumbranceLevel = "encumbered" // 151-200%
	EncumbranceOverloaded EncumbranceLevel = "overloaded" // 201%+
)

// WeightReport is the derived weight accounting for one finalized
// inventory. It carries no hidden state; recompute it after every
// inventory change.
type WeightReport struct {
	TotalWeight float64          `json:"total_weight"`
	Capacity    float64          `json:"capacity"`
	Level       EncumbranceLevel `json:"level"`
}

// AccountWeight computes total carried weight, maximum capacity, and
// the encumbrance level for a finalized inventory. Total weight sums
// item weight times quantity over every occupied slot plus the gold
// conversion; capacity is Strength-based plus any weight_increase bonus
// from equipped items.
func AccountWeight(reg *catalog.Registry, inv *hero.Inventory, gold, strength int32) WeightReport {
	report := WeightReport{
		Capacity: CapacityPerStrength * float64(strength),
	}

	for _, stack := range inv.Stacks() {
		item, ok := reg.Item(stack.ItemID)
		if !ok {
			continue
		}
		report.TotalWeight += item.Weight * float64(stack.Quantity)
	}
	report.TotalWeight += float64(gold) * GoldWeightRatio

	report.Capacity += equippedWeightBonus(reg, inv)
	report.Level = encumbranceLevel(report.TotalWeight, report.Capacity)

	return report
}

// equippedWeightBonus sums weight_increase over the occupied gear slots
func equippedWeightBonus(reg *catalog.Registry, inv *hero.Inventory) float64 {
	bonus := 0.0

	equipped := []*hero.ItemStack{
		inv.Gear.Armor,
		inv.Gear.Necklace,
		inv.Gear.Ring,
		inv.Gear.Ammunition,
		inv.Gear.Clothes,
		inv.Gear.LeftArm,
		inv.Gear.RightArm,
	}
	if inv.Gear.Bag != nil {
		equipped = append(equipped, &inv.Gear.Bag.ItemStack)
	}

	for _, stack := range equipped {
		if stack == nil {
			continue
		}
		if item, ok := reg.Item(stack.ItemID); ok {
			bonus += item.WeightIncrease
		}
	}

	return bonus
}

func encumbranceLevel(total, capacity float64) EncumbranceLevel {
	if capacity <= 0 {
		return EncumbranceNormal
	}

	percentage := total / capacity * 100
	switch {
	case percentage <= 50:
		return EncumbranceLight
	case percentage <= 100:
		return EncumbranceNormal
	case percentage <= 150:
		return EncumbranceOverweight
	case percentage <= 200:
		return EncumbranceEncumbered
	default:
		return EncumbranceOverloaded
	}
}
