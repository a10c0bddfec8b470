package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heroforge/hero-api/internal/catalog"
)

// testIdentityKey is a fixed 32-byte key used across the engine tests
const testIdentityKey = "84dee6e676e5bb67b4ad4e042cf70cbd8681155db535942fcc6a0533858a7240"

// scriptRoller is a dice.Roller test double that replays a fixed list
// of values, so sampling walks can be pinned exactly.
type scriptRoller struct {
	values []int
	idx    int
}

func (r *scriptRoller) Roll(_ int) (int, error) {
	if r.idx >= len(r.values) {
		return 1, nil
	}
	v := r.values[r.idx]
	r.idx++
	return v, nil
}

func (r *scriptRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func allRaces() []string {
	return []string{"Human", "Elf", "Dwarf", "Halfling", "Orc", "Tiefling", "Gnome", "Dragonborn"}
}

// testRegistry builds the reference data the engine tests share: a
// small item catalog, the pinned race table, and a Fighter template
// with all three choice group kinds.
func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()

	items := []catalog.Item{
		{ID: "longsword", Tags: []catalog.ItemTag{catalog.TagEquipment, catalog.TagWeapon},
			GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 3},
		{ID: "shortsword", Tags: []catalog.ItemTag{catalog.TagEquipment, catalog.TagWeapon},
			GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 2},
		{ID: "greataxe", Tags: []catalog.ItemTag{catalog.TagEquipment, catalog.TagWeapon, catalog.TagTwoHanded},
			GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 7},
		{ID: "shield", Tags: []catalog.ItemTag{catalog.TagEquipment},
			GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 6},
		{ID: "leather-armor", Tags: []catalog.ItemTag{catalog.TagEquipment},
			GearSlot: catalog.GearSlotArmor, StackLimit: 1, Weight: 10},
		{ID: "amulet", Tags: []catalog.ItemTag{catalog.TagEquipment},
			GearSlot: catalog.GearSlotNecklace, StackLimit: 1, Weight: 1},
		{ID: "arrows", Tags: []catalog.ItemTag{catalog.TagEquipment},
			GearSlot: catalog.GearSlotAmmunition, StackLimit: 20, Weight: 0.05},
		{ID: "travelers-clothes", Tags: []catalog.ItemTag{catalog.TagEquipment},
			GearSlot: catalog.GearSlotClothes, StackLimit: 1, Weight: 4},
		{ID: "backpack", Tags: []catalog.ItemTag{catalog.TagEquipment, catalog.TagContainer},
			GearSlot: catalog.GearSlotBag, StackLimit: 1, Weight: 5, WeightIncrease: 30},
		{ID: "pouch", Tags: []catalog.ItemTag{catalog.TagContainer}, StackLimit: 1, Weight: 1},
		{ID: "ration", Tags: []catalog.ItemTag{catalog.TagConsumable}, StackLimit: 10, Weight: 2},
		{ID: "potion-healing", Tags: []catalog.ItemTag{catalog.TagConsumable}, StackLimit: 5, Weight: 0.5},
		{ID: "torch", StackLimit: 10, Weight: 1},
		{ID: "rope", StackLimit: 1, Weight: 10},
		{ID: "waterskin", StackLimit: 1, Weight: 5},
		{ID: "explorers-pack", Tags: []catalog.ItemTag{catalog.TagPack, catalog.TagContainer},
			StackLimit: 1, Weight: 1,
			Contents: []catalog.ItemQuantity{
				{ItemID: "ration", Quantity: 10},
				{ItemID: "torch", Quantity: 10},
				{ItemID: "rope", Quantity: 1},
				{ItemID: "waterskin", Quantity: 1},
				{ItemID: "pouch", Quantity: 1}, // containers inside packs are skipped
			}},
	}

	classTable := catalog.WeightTable{
		{Label: "Fighter", Weight: 60},
		{Label: "Wizard", Weight: 40},
	}
	backgroundTable := catalog.WeightTable{
		{Label: "Soldier", Weight: 50},
		{Label: "Sage", Weight: 50},
	}

	classesByRace := make(map[string]catalog.WeightTable)
	backgroundsByRace := make(map[string]catalog.WeightTable)
	for _, race := range allRaces() {
		classesByRace[race] = classTable
		backgroundsByRace[race] = backgroundTable
	}

	weights := catalog.WeightData{
		Races: catalog.WeightTable{
			{Label: "Human", Weight: 30},
			{Label: "Elf", Weight: 15},
			{Label: "Dwarf", Weight: 15},
			{Label: "Halfling", Weight: 10},
			{Label: "Orc", Weight: 10},
			{Label: "Tiefling", Weight: 10},
			{Label: "Gnome", Weight: 5},
			{Label: "Dragonborn", Weight: 5},
		},
		ClassesByRace:     classesByRace,
		BackgroundsByRace: backgroundsByRace,
		Alignments: catalog.WeightTable{
			{Label: "Lawful Good", Weight: 20},
			{Label: "Neutral", Weight: 60},
			{Label: "Chaotic Neutral", Weight: 20},
		},
	}

	templates := []catalog.EquipmentTemplate{
		{
			Class: "Fighter",
			Given: []catalog.ItemQuantity{
				{ItemID: "travelers-clothes", Quantity: 1},
				{ItemID: "ration", Quantity: 2},
			},
			Choices: []catalog.ChoiceGroup{
				{ID: "choice-0", Kind: catalog.ChoiceSimple, Simple: []catalog.ChoiceOption{
					{OptionID: "longsword", Item: catalog.ItemQuantity{ItemID: "longsword", Quantity: 1}},
					{OptionID: "shortsword", Item: catalog.ItemQuantity{ItemID: "shortsword", Quantity: 1}},
				}},
				{ID: "choice-1", Kind: catalog.ChoiceBundle, Bundles: []catalog.BundleOption{
					{OptionID: "explorer", Items: []catalog.ItemQuantity{
						{ItemID: "explorers-pack", Quantity: 1},
					}},
					{OptionID: "skirmisher", Items: []catalog.ItemQuantity{
						{ItemID: "leather-armor", Quantity: 1},
						{ItemID: "arrows", Quantity: 20},
					}},
				}},
				{ID: "choice-2", Kind: catalog.ChoiceComplexWeapon, WeaponSlots: []catalog.WeaponSlot{
					{Fixed: &catalog.ItemQuantity{ItemID: "shield", Quantity: 1}},
					{Options: []catalog.ChoiceOption{
						{OptionID: "greataxe", Item: catalog.ItemQuantity{ItemID: "greataxe", Quantity: 1}},
						{OptionID: "shortsword", Item: catalog.ItemQuantity{ItemID: "shortsword", Quantity: 1}},
					}},
				}},
			},
		},
		{
			Class: "Wizard",
			Given: []catalog.ItemQuantity{
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: nil,
		},
	}

	classes := []catalog.ClassStats{
		{Class: "Fighter", HitDie: 10},
		{Class: "Wizard", HitDie: 6, CastingAbility: "intelligence"},
	}

	reg, err := catalog.NewRegistry(&catalog.Config{
		Items:            items,
		Weights:          weights,
		Templates:        templates,
		Classes:          classes,
		GoldByBackground: map[string]int32{"Soldier": 1200, "Sage": 800},
	})
	require.NoError(t, err)
	return reg
}
