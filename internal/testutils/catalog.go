package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heroforge/hero-api/internal/catalog"
)

// CreateTestRegistry builds a small validated catalog registry. Every
// race resolves to the Fighter class so tests that depend on the drawn
// class are deterministic regardless of seed.
func CreateTestRegistry(t *testing.T) *catalog.Registry {
	t.Helper()

	races := catalog.WeightTable{
		{Label: "Human", Weight: 60},
		{Label: "Elf", Weight: 25},
		{Label: "Dwarf", Weight: 15},
	}

	classesByRace := make(map[string]catalog.WeightTable)
	backgroundsByRace := make(map[string]catalog.WeightTable)
	for _, race := range races {
		classesByRace[race.Label] = catalog.WeightTable{{Label: "Fighter", Weight: 100}}
		backgroundsByRace[race.Label] = catalog.WeightTable{
			{Label: "Soldier", Weight: 70},
			{Label: "Sage", Weight: 30},
		}
	}

	reg, err := catalog.NewRegistry(&catalog.Config{
		Items: []catalog.Item{
			{ID: "longsword", Name: "Longsword",
				Tags:     []catalog.ItemTag{catalog.TagEquipment, catalog.TagWeapon},
				GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 3},
			{ID: "shield", Name: "Shield",
				Tags:     []catalog.ItemTag{catalog.TagEquipment},
				GearSlot: catalog.GearSlotHands, StackLimit: 1, Weight: 6},
			{ID: "travelers-clothes", Name: "Traveler's Clothes",
				Tags:     []catalog.ItemTag{catalog.TagEquipment},
				GearSlot: catalog.GearSlotClothes, StackLimit: 1, Weight: 4},
			{ID: "ration", Name: "Ration",
				Tags:       []catalog.ItemTag{catalog.TagConsumable},
				StackLimit: 10, Weight: 2},
			{ID: "backpack", Name: "Backpack",
				Tags:     []catalog.ItemTag{catalog.TagEquipment, catalog.TagContainer},
				GearSlot: catalog.GearSlotBag, StackLimit: 1, Weight: 5, WeightIncrease: 30},
			{ID: "dungeoneers-pack", Name: "Dungeoneer's Pack",
				Tags:       []catalog.ItemTag{catalog.TagPack, catalog.TagContainer},
				StackLimit: 1, Weight: 1,
				Contents: []catalog.ItemQuantity{
					{ItemID: "ration", Quantity: 10},
				}},
		},
		Weights: catalog.WeightData{
			Races:             races,
			ClassesByRace:     classesByRace,
			BackgroundsByRace: backgroundsByRace,
			Alignments: catalog.WeightTable{
				{Label: "Lawful Good", Weight: 30},
				{Label: "Neutral", Weight: 70},
			},
		},
		Templates: []catalog.EquipmentTemplate{
			{
				Class: "Fighter",
				Given: []catalog.ItemQuantity{
					{ItemID: "travelers-clothes", Quantity: 1},
				},
				Choices: []catalog.ChoiceGroup{
					{ID: "choice-0", Kind: catalog.ChoiceSimple, Simple: []catalog.ChoiceOption{
						{OptionID: "longsword", Item: catalog.ItemQuantity{ItemID: "longsword", Quantity: 1}},
						{OptionID: "shield", Item: catalog.ItemQuantity{ItemID: "shield", Quantity: 1}},
					}},
					{ID: "choice-1", Kind: catalog.ChoiceBundle, Bundles: []catalog.BundleOption{
						{OptionID: "dungeoneer", Items: []catalog.ItemQuantity{
							{ItemID: "dungeoneers-pack", Quantity: 1},
						}},
						{OptionID: "provisions", Items: []catalog.ItemQuantity{
							{ItemID: "ration", Quantity: 5},
						}},
					}},
				},
			},
		},
		Classes: []catalog.ClassStats{
			{Class: "Fighter", HitDie: 10},
		},
		GoldByBackground: map[string]int32{"Soldier": 1200, "Sage": 800},
	})
	require.NoError(t, err)
	return reg
}
