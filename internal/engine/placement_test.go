package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

type PlaceStacksTestSuite struct {
	suite.Suite
}

func (s *PlaceStacksTestSuite) place(stacks []hero.ItemStack) *engine.PlacementResult {
	return engine.PlaceStacks(testRegistry(s.T()), stacks)
}

func (s *PlaceStacksTestSuite) TestUnpacksFirstPackIntoBagSlot() {
	result := s.place([]hero.ItemStack{
		{ItemID: "explorers-pack", Quantity: 1},
	})

	bag := result.Inventory.Gear.Bag
	s.Require().NotNil(bag)
	s.Equal("backpack", bag.ItemID)

	// Declared contents in order, minus the nested pouch
	s.Require().NotNil(bag.Contents[0])
	s.Equal(hero.ItemStack{ItemID: "ration", Quantity: 10}, *bag.Contents[0])
	s.Require().NotNil(bag.Contents[1])
	s.Equal(hero.ItemStack{ItemID: "torch", Quantity: 10}, *bag.Contents[1])
	s.Require().NotNil(bag.Contents[2])
	s.Equal(hero.ItemStack{ItemID: "rope", Quantity: 1}, *bag.Contents[2])
	s.Require().NotNil(bag.Contents[3])
	s.Equal(hero.ItemStack{ItemID: "waterskin", Quantity: 1}, *bag.Contents[3])
	s.Nil(bag.Contents[4])

	s.Empty(result.Overflow)
}

func (s *PlaceStacksTestSuite) TestSecondPackGoesToGeneralSlot() {
	result := s.place([]hero.ItemStack{
		{ItemID: "explorers-pack", Quantity: 1},
		{ItemID: "explorers-pack", Quantity: 1},
	})

	s.Require().NotNil(result.Inventory.Gear.Bag)
	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("explorers-pack", result.Inventory.General[0].ItemID)
	s.Empty(result.Overflow)
}

func (s *PlaceStacksTestSuite) TestFixedSlotsFirstComeFirstServed() {
	result := s.place([]hero.ItemStack{
		{ItemID: "leather-armor", Quantity: 1},
		{ItemID: "amulet", Quantity: 1},
		{ItemID: "leather-armor", Quantity: 1},
		{ItemID: "arrows", Quantity: 20},
		{ItemID: "travelers-clothes", Quantity: 1},
	})

	gear := result.Inventory.Gear
	s.Require().NotNil(gear.Armor)
	s.Equal("leather-armor", gear.Armor.ItemID)
	s.Require().NotNil(gear.Necklace)
	s.Equal("amulet", gear.Necklace.ItemID)
	s.Require().NotNil(gear.Ammunition)
	s.Equal(hero.ItemStack{ItemID: "arrows", Quantity: 20}, *gear.Ammunition)
	s.Require().NotNil(gear.Clothes)

	// The duplicate armor lost the slot race and fell through to general
	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("leather-armor", result.Inventory.General[0].ItemID)
}

func (s *PlaceStacksTestSuite) TestOneHandedWeaponsFillBothArms() {
	result := s.place([]hero.ItemStack{
		{ItemID: "longsword", Quantity: 1},
		{ItemID: "shield", Quantity: 1},
	})

	gear := result.Inventory.Gear
	s.Require().NotNil(gear.RightArm)
	s.Equal("longsword", gear.RightArm.ItemID)
	s.Require().NotNil(gear.LeftArm)
	s.Equal("shield", gear.LeftArm.ItemID)
}

func (s *PlaceStacksTestSuite) TestTwoHandedWeaponExcludesLeftArm() {
	result := s.place([]hero.ItemStack{
		{ItemID: "greataxe", Quantity: 1},
		{ItemID: "shield", Quantity: 1},
	})

	gear := result.Inventory.Gear
	s.Require().NotNil(gear.RightArm)
	s.Equal("greataxe", gear.RightArm.ItemID)
	s.Nil(gear.LeftArm)

	// The shield is carried, not wielded
	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("shield", result.Inventory.General[0].ItemID)
}

func (s *PlaceStacksTestSuite) TestOneHandedBeforeTwoHanded() {
	// Right arm is taken first, so the greataxe cannot be wielded
	result := s.place([]hero.ItemStack{
		{ItemID: "longsword", Quantity: 1},
		{ItemID: "greataxe", Quantity: 1},
	})

	gear := result.Inventory.Gear
	s.Require().NotNil(gear.RightArm)
	s.Equal("longsword", gear.RightArm.ItemID)
	s.Nil(gear.LeftArm)

	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("greataxe", result.Inventory.General[0].ItemID)
}

func (s *PlaceStacksTestSuite) TestContainersNeverNest() {
	result := s.place([]hero.ItemStack{
		{ItemID: "explorers-pack", Quantity: 1},
		{ItemID: "pouch", Quantity: 1},
	})

	// The pouch goes to a general slot even though the backpack has room
	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("pouch", result.Inventory.General[0].ItemID)

	bag := result.Inventory.Gear.Bag
	s.Require().NotNil(bag)
	for _, content := range bag.Contents {
		if content != nil {
			s.NotEqual("pouch", content.ItemID)
		}
	}
}

func (s *PlaceStacksTestSuite) TestRemainderPrefersBackpack() {
	result := s.place([]hero.ItemStack{
		{ItemID: "explorers-pack", Quantity: 1},
		{ItemID: "potion-healing", Quantity: 2},
	})

	bag := result.Inventory.Gear.Bag
	s.Require().NotNil(bag)
	s.Require().NotNil(bag.Contents[4])
	s.Equal(hero.ItemStack{ItemID: "potion-healing", Quantity: 2}, *bag.Contents[4])

	for _, slot := range result.Inventory.General {
		s.Nil(slot)
	}
}

func (s *PlaceStacksTestSuite) TestRemainderWithoutBagUsesGeneralSlots() {
	result := s.place([]hero.ItemStack{
		{ItemID: "ration", Quantity: 5},
		{ItemID: "torch", Quantity: 3},
	})

	s.Nil(result.Inventory.Gear.Bag)
	s.Require().NotNil(result.Inventory.General[0])
	s.Equal("ration", result.Inventory.General[0].ItemID)
	s.Require().NotNil(result.Inventory.General[1])
	s.Equal("torch", result.Inventory.General[1].ItemID)
	s.Empty(result.Overflow)
}

func (s *PlaceStacksTestSuite) TestOverflowWhenEverythingIsFull() {
	// Five loose stacks and no bag: four general slots, one overflow
	stacks := []hero.ItemStack{
		{ItemID: "torch", Quantity: 1},
		{ItemID: "torch", Quantity: 1},
		{ItemID: "torch", Quantity: 1},
		{ItemID: "torch", Quantity: 1},
		{ItemID: "rope", Quantity: 1},
	}

	result := s.place(stacks)

	for _, slot := range result.Inventory.General {
		s.NotNil(slot)
	}
	s.Require().Len(result.Overflow, 1)
	s.Equal(hero.ItemStack{ItemID: "rope", Quantity: 1}, result.Overflow[0])
}

func (s *PlaceStacksTestSuite) TestFullStartingLoadout() {
	// A resolved Fighter loadout end to end
	result := s.place([]hero.ItemStack{
		{ItemID: "travelers-clothes", Quantity: 1},
		{ItemID: "ration", Quantity: 2},
		{ItemID: "longsword", Quantity: 1},
		{ItemID: "explorers-pack", Quantity: 1},
		{ItemID: "shield", Quantity: 1},
	})

	inv := result.Inventory
	s.Require().NotNil(inv.Gear.Bag)
	s.Require().NotNil(inv.Gear.Clothes)
	s.Require().NotNil(inv.Gear.RightArm)
	s.Equal("longsword", inv.Gear.RightArm.ItemID)
	s.Require().NotNil(inv.Gear.LeftArm)
	s.Equal("shield", inv.Gear.LeftArm.ItemID)

	// The loose rations land behind the pack contents
	s.Require().NotNil(inv.Gear.Bag.Contents[4])
	s.Equal(hero.ItemStack{ItemID: "ration", Quantity: 2}, *inv.Gear.Bag.Contents[4])

	s.Empty(result.Overflow)
}

func (s *PlaceStacksTestSuite) TestPlacementConservesStacks() {
	stacks := []hero.ItemStack{
		{ItemID: "explorers-pack", Quantity: 1},
		{ItemID: "longsword", Quantity: 1},
		{ItemID: "leather-armor", Quantity: 1},
		{ItemID: "potion-healing", Quantity: 5},
		{ItemID: "pouch", Quantity: 1},
	}

	result := s.place(stacks)

	placed := make(map[string]int32)
	for _, stack := range result.Inventory.Stacks() {
		placed[stack.ItemID] += stack.Quantity
	}
	for _, stack := range result.Overflow {
		placed[stack.ItemID] += stack.Quantity
	}

	// The unpacked pack is replaced by a backpack plus its contents
	s.Equal(int32(1), placed["backpack"])
	s.Zero(placed["explorers-pack"])
	s.Equal(int32(10), placed["ration"])
	s.Equal(int32(1), placed["longsword"])
	s.Equal(int32(1), placed["leather-armor"])
	s.Equal(int32(5), placed["potion-healing"])
	s.Equal(int32(1), placed["pouch"])
}

func TestPlaceStacksTestSuite(t *testing.T) {
	suite.Run(t, new(PlaceStacksTestSuite))
}
