// Package catalog holds the immutable reference data character
// generation consumes: the item catalog, the weighted tables for race,
// class, background, and alignment, and the per-class equipment
// templates. The data is loaded once at process start and never mutated.
package catalog

import "github.com/heroforge/hero-api/internal/entities/hero"

// ItemTag classifies an item's behavior during inventory resolution
type ItemTag string

// Item tags
const (
	TagEquipment  ItemTag = "equipment"
	TagContainer  ItemTag = "container"
	TagPack       ItemTag = "pack"
	TagTwoHanded  ItemTag = "two-handed"
	TagConsumable ItemTag = "consumable"
	TagWeapon     ItemTag = "weapon"
)

// GearSlot is the equip location an equipment item declares. Hands is a
// logical slot resolved to left_arm/right_arm during placement.
type GearSlot string

// Gear slot declarations
const (
	GearSlotNone       GearSlot = ""
	GearSlotArmor      GearSlot = "armor"
	GearSlotNecklace   GearSlot = "necklace"
	GearSlotRing       GearSlot = "ring"
	GearSlotAmmunition GearSlot = "ammunition"
	GearSlotClothes    GearSlot = "clothes"
	GearSlotHands      GearSlot = "hands"
	GearSlotBag        GearSlot = "bag"
)

// FixedGearSlots are the slots filled first-come-first-served during
// the fixed-equip placement pass
var FixedGearSlots = map[GearSlot]hero.GearSlotName{
	GearSlotArmor:      hero.GearSlotArmor,
	GearSlotNecklace:   hero.GearSlotNecklace,
	GearSlotRing:       hero.GearSlotRing,
	GearSlotAmmunition: hero.GearSlotAmmunition,
	GearSlotClothes:    hero.GearSlotClothes,
}

// ItemQuantity is an item reference with a quantity, used for given
// items, choice options, bundles, and pack contents
type ItemQuantity struct {
	ItemID   string `json:"item"`
	Quantity int32  `json:"quantity"`
}

// Item is one catalog entry. Read-only reference data.
type Item struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Tags []ItemTag `json:"tags,omitempty"`

	GearSlot   GearSlot `json:"gear_slot,omitempty"`
	StackLimit int32    `json:"stack,omitempty"`
	Weight     float64  `json:"weight,omitempty"`

	// WeightIncrease is a carry-capacity bonus granted while the item
	// is equipped, e.g. an enhanced backpack
	WeightIncrease float64 `json:"weight_increase,omitempty"`

	// Contents is the fixed content list for pack items
	Contents []ItemQuantity `json:"contents,omitempty"`
}

// HasTag reports whether the item carries the given tag
func (i *Item) HasTag(tag ItemTag) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WeightEntry is one (label, weight) row of a weight table
type WeightEntry struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// WeightTable is an ordered list of weighted labels. Order is part of
// the data: the roulette walk visits entries in declared order, so a
// reordered table produces different draws for the same seed.
type WeightTable []WeightEntry

// Total returns the sum of all weights
func (t WeightTable) Total() int {
	total := 0
	for _, e := range t {
		total += e.Weight
	}
	return total
}

// WeightData bundles the four sampling tables. Class and background
// tables are conditioned on the drawn race.
type WeightData struct {
	Races             WeightTable            `json:"races"`
	ClassesByRace     map[string]WeightTable `json:"classes_by_race"`
	BackgroundsByRace map[string]WeightTable `json:"backgrounds_by_race"`
	Alignments        WeightTable            `json:"alignments"`
}

// ChoiceKind discriminates the three equipment choice group variants
type ChoiceKind string

// Choice group kinds
const (
	ChoiceSimple        ChoiceKind = "simple"
	ChoiceBundle        ChoiceKind = "bundle"
	ChoiceComplexWeapon ChoiceKind = "complex_weapon"
)

// ChoiceOption is a labeled single-item option within a Simple group or
// a weapon sub-choice
type ChoiceOption struct {
	OptionID string       `json:"option"`
	Item     ItemQuantity `json:"item"`
}

// BundleOption is a labeled list of items chosen as a unit
type BundleOption struct {
	OptionID string         `json:"option"`
	Items    []ItemQuantity `json:"items"`
}

// WeaponSlot is one ordered slot of a ComplexWeapon group: either a
// fixed item or a sub-choice among weapon options. Exactly one of the
// fields is set.
type WeaponSlot struct {
	Fixed   *ItemQuantity  `json:"fixed,omitempty"`
	Options []ChoiceOption `json:"options,omitempty"`
}

// ChoiceGroup is one unresolved equipment decision point in a class
// template. The Kind field selects which variant payload is populated;
// consumers must dispatch on it exhaustively.
type ChoiceGroup struct {
	ID          string     `json:"id"`
	Description string     `json:"description,omitempty"`
	Kind        ChoiceKind `json:"kind"`

	Simple      []ChoiceOption `json:"simple,omitempty"`
	Bundles     []BundleOption `json:"bundles,omitempty"`
	WeaponSlots []WeaponSlot   `json:"weapon_slots,omitempty"`
}

// EquipmentTemplate is a class's starting gear: guaranteed items plus
// the ordered choice groups a player resolves during creation
type EquipmentTemplate struct {
	Class   string         `json:"class"`
	Given   []ItemQuantity `json:"given"`
	Choices []ChoiceGroup  `json:"choices"`
}

// ClassStats holds the per-class derivation inputs for hit points and
// mana. CastingAbility is empty for non-casters.
type ClassStats struct {
	Class          string       `json:"class"`
	HitDie         int32        `json:"hit_die"`
	CastingAbility hero.Ability `json:"casting_ability,omitempty"`
}
