package hero

// Slot counts are fixed by the inventory layout of the game client:
// a 4-slot general row plus a 20-slot backpack grid.
const (
	GeneralSlots  = 4
	BackpackSlots = 20
)

// GearSlotName identifies a named single-occupancy equip location
type GearSlotName string

// Gear slot names
const (
	GearSlotArmor      GearSlotName = "armor"
	GearSlotNecklace   GearSlotName = "necklace"
	GearSlotRing       GearSlotName = "ring"
	GearSlotAmmunition GearSlotName = "ammunition"
	GearSlotClothes    GearSlotName = "clothes"
	GearSlotLeftArm    GearSlotName = "left_arm"
	GearSlotRightArm   GearSlotName = "right_arm"
	GearSlotBag        GearSlotName = "bag"
)

// ItemStack is a quantity of a single item occupying one slot.
// Invariant: 1 <= Quantity <= the item's stack limit.
type ItemStack struct {
	ItemID   string `json:"item"`
	Quantity int32  `json:"quantity"`
}

// Container is an equipped bag together with its content slots. Content
// slots never hold another container.
type Container struct {
	ItemStack
	Contents [BackpackSlots]*ItemStack `json:"contents"`
}

// FreeContentSlot returns the index of the first empty content slot,
// or -1 when the container is full
func (c *Container) FreeContentSlot() int {
	for i, slot := range c.Contents {
		if slot == nil {
			return i
		}
	}
	return -1
}

// GearSlots holds the named equip locations
type GearSlots struct {
	Armor      *ItemStack `json:"armor"`
	Necklace   *ItemStack `json:"necklace"`
	Ring       *ItemStack `json:"ring"`
	Ammunition *ItemStack `json:"ammunition"`
	Clothes    *ItemStack `json:"clothes"`
	LeftArm    *ItemStack `json:"left_arm"`
	RightArm   *ItemStack `json:"right_arm"`
	Bag        *Container `json:"bag"`
}

// Fixed returns a pointer to the stack pointer for one of the five
// fixed equip slots, or nil for hands and bag which have their own
// placement rules
func (g *GearSlots) Fixed(name GearSlotName) **ItemStack {
	switch name {
	case GearSlotArmor:
		return &g.Armor
	case GearSlotNecklace:
		return &g.Necklace
	case GearSlotRing:
		return &g.Ring
	case GearSlotAmmunition:
		return &g.Ammunition
	case GearSlotClothes:
		return &g.Clothes
	default:
		return nil
	}
}

// Inventory is the finalized slot layout for one character. It is
// produced as an immutable snapshot; gameplay systems replace it rather
// than mutate it in place.
type Inventory struct {
	General [GeneralSlots]*ItemStack `json:"general_slots"`
	Gear    GearSlots                `json:"gear_slots"`
}

// FreeGeneralSlot returns the index of the first empty general slot,
// or -1 when the row is full
func (inv *Inventory) FreeGeneralSlot() int {
	for i, slot := range inv.General {
		if slot == nil {
			return i
		}
	}
	return -1
}

// Stacks returns every occupied stack in the inventory: gear slots, bag
// contents, then general slots. The walk order is fixed so derived
// computations over an inventory are reproducible.
func (inv *Inventory) Stacks() []ItemStack {
	var out []ItemStack

	appendStack := func(s *ItemStack) {
		if s != nil {
			out = append(out, *s)
		}
	}

	appendStack(inv.Gear.Armor)
	appendStack(inv.Gear.Necklace)
	appendStack(inv.Gear.Ring)
	appendStack(inv.Gear.Ammunition)
	appendStack(inv.Gear.Clothes)
	appendStack(inv.Gear.LeftArm)
	appendStack(inv.Gear.RightArm)

	if bag := inv.Gear.Bag; bag != nil {
		out = append(out, bag.ItemStack)
		for _, slot := range bag.Contents {
			appendStack(slot)
		}
	}

	for _, slot := range inv.General {
		appendStack(slot)
	}

	return out
}
