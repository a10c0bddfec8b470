package testutils

import (
	"github.com/heroforge/hero-api/internal/entities/hero"
)

// TestPubkey is a fixed 32-byte identity key for test fixtures
const TestPubkey = "84dee6e676e5bb67b4ad4e042cf70cbd8681155db535942fcc6a0533858a7240"

// CreateTestCharacter creates a finalized character with sensible
// defaults for the given pubkey
func CreateTestCharacter(pubkey string) *hero.Character {
	return &hero.Character{
		Pubkey:     pubkey,
		Race:       "Human",
		Class:      "Fighter",
		Background: "Soldier",
		Alignment:  "Neutral",
		Abilities: hero.AbilityScores{
			Strength:     14,
			Dexterity:    12,
			Constitution: 16,
			Intelligence: 10,
			Wisdom:       11,
			Charisma:     9,
		},
		HitPoints: 13,
		Mana:      0,
		Gold:      1000,
		Seed:      -6226388233979046638,
	}
}

// CreateTestInventory creates a small placed inventory: a wielded
// sword, worn clothes, and a backpack holding rations
func CreateTestInventory() *hero.Inventory {
	inv := &hero.Inventory{}
	inv.Gear.RightArm = &hero.ItemStack{ItemID: "longsword", Quantity: 1}
	inv.Gear.Clothes = &hero.ItemStack{ItemID: "travelers-clothes", Quantity: 1}
	inv.Gear.Bag = &hero.Container{
		ItemStack: hero.ItemStack{ItemID: "backpack", Quantity: 1},
	}
	inv.Gear.Bag.Contents[0] = &hero.ItemStack{ItemID: "ration", Quantity: 10}
	return inv
}
