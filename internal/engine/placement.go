package engine

import (
	"log/slog"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

// PlacementResult is the outcome of inventory resolution. Placement
// never fails: stacks that fit nowhere are reported as overflow and the
// character still completes creation.
type PlacementResult struct {
	Inventory *hero.Inventory
	Overflow  []hero.ItemStack
}

// placer is the private working state for one resolution run
type placer struct {
	reg       *catalog.Registry
	inv       *hero.Inventory
	overflow  []hero.ItemStack
	twoHanded bool
}

// PlaceStacks assigns merged stacks to equip slots, backpack contents,
// and general slots in five ordered passes:
//
//  1. the first pack-tagged stack is unpacked into the bag slot
//  2. fixed equip slots (armor, necklace, ring, ammunition, clothes),
//     first come first served by list order
//  3. hands, honoring two-handed exclusivity
//  4. leftover containers into general slots, never into the backpack
//  5. everything else: backpack, then general slots, then overflow
//
// A second pack behind an occupied bag slot is deliberately not
// unpacked; it runs through passes 4-5 like any other container.
func PlaceStacks(reg *catalog.Registry, stacks []hero.ItemStack) *PlacementResult {
	p := &placer{
		reg: reg,
		inv: &hero.Inventory{},
	}

	remaining := p.unpackFirstPack(stacks)
	remaining = p.equipFixedSlots(remaining)
	remaining = p.equipHands(remaining)
	remaining = p.placeContainers(remaining)
	p.placeRemainder(remaining)

	return &PlacementResult{
		Inventory: p.inv,
		Overflow:  p.overflow,
	}
}

func (p *placer) item(id string) *catalog.Item {
	item, ok := p.reg.Item(id)
	if !ok {
		return nil
	}
	return item
}

// unpackFirstPack expands the first pack-tagged stack into the bag
// slot: its declared contents fill the backpack's content slots in
// order, and a generic backpack occupies the bag gear slot. Containers
// and further packs inside a pack's declared contents are skipped to
// keep the no-nested-containers invariant.
func (p *placer) unpackFirstPack(stacks []hero.ItemStack) []hero.ItemStack {
	remaining := make([]hero.ItemStack, 0, len(stacks))

	for _, stack := range stacks {
		item := p.item(stack.ItemID)
		if item == nil || !item.HasTag(catalog.TagPack) || p.inv.Gear.Bag != nil {
			remaining = append(remaining, stack)
			continue
		}

		bag := &hero.Container{
			ItemStack: hero.ItemStack{ItemID: catalog.BackpackItemID, Quantity: 1},
		}

		slot := 0
		for _, content := range item.Contents {
			if slot >= hero.BackpackSlots {
				slog.Warn("pack contents exceed backpack capacity",
					"pack", item.ID, "dropped_item", content.ItemID)
				break
			}
			contentItem := p.item(content.ItemID)
			if contentItem != nil && (contentItem.HasTag(catalog.TagContainer) || contentItem.HasTag(catalog.TagPack)) {
				continue
			}
			bag.Contents[slot] = &hero.ItemStack{ItemID: content.ItemID, Quantity: content.Quantity}
			slot++
		}

		p.inv.Gear.Bag = bag
	}

	return remaining
}

// equipFixedSlots fills the five declared-slot gear positions
func (p *placer) equipFixedSlots(stacks []hero.ItemStack) []hero.ItemStack {
	remaining := make([]hero.ItemStack, 0, len(stacks))

	for _, stack := range stacks {
		item := p.item(stack.ItemID)
		if item == nil || !item.HasTag(catalog.TagEquipment) {
			remaining = append(remaining, stack)
			continue
		}

		name, fixed := catalog.FixedGearSlots[item.GearSlot]
		if !fixed {
			remaining = append(remaining, stack)
			continue
		}

		slot := p.inv.Gear.Fixed(name)
		if slot == nil || *slot != nil {
			remaining = append(remaining, stack)
			continue
		}

		s := stack
		*slot = &s
	}

	return remaining
}

// equipHands resolves hand-slot equipment. A two-handed weapon takes
// right_arm and sets the exclusivity flag; one-handed weapons prefer
// right_arm, then left_arm unless the flag is set.
func (p *placer) equipHands(stacks []hero.ItemStack) []hero.ItemStack {
	remaining := make([]hero.ItemStack, 0, len(stacks))

	for _, stack := range stacks {
		item := p.item(stack.ItemID)
		if item == nil || !item.HasTag(catalog.TagEquipment) || item.GearSlot != catalog.GearSlotHands {
			remaining = append(remaining, stack)
			continue
		}

		s := stack
		switch {
		case item.HasTag(catalog.TagTwoHanded):
			if p.inv.Gear.RightArm == nil {
				p.inv.Gear.RightArm = &s
				p.twoHanded = true
				continue
			}
		case p.inv.Gear.RightArm == nil:
			p.inv.Gear.RightArm = &s
			continue
		case p.inv.Gear.LeftArm == nil && !p.twoHanded:
			p.inv.Gear.LeftArm = &s
			continue
		}

		remaining = append(remaining, stack)
	}

	return remaining
}

// placeContainers puts unplaced containers into general slots. They
// never go into another container's content slots.
func (p *placer) placeContainers(stacks []hero.ItemStack) []hero.ItemStack {
	remaining := make([]hero.ItemStack, 0, len(stacks))

	for _, stack := range stacks {
		item := p.item(stack.ItemID)
		if item == nil || !(item.HasTag(catalog.TagContainer) || item.HasTag(catalog.TagPack)) {
			remaining = append(remaining, stack)
			continue
		}

		if idx := p.inv.FreeGeneralSlot(); idx >= 0 {
			s := stack
			p.inv.General[idx] = &s
			continue
		}

		p.reportOverflow(stack)
	}

	return remaining
}

// placeRemainder fills the backpack first, then general slots, and
// reports whatever is left as overflow
func (p *placer) placeRemainder(stacks []hero.ItemStack) {
	for _, stack := range stacks {
		s := stack

		if bag := p.inv.Gear.Bag; bag != nil {
			if idx := bag.FreeContentSlot(); idx >= 0 {
				bag.Contents[idx] = &s
				continue
			}
		}

		if idx := p.inv.FreeGeneralSlot(); idx >= 0 {
			p.inv.General[idx] = &s
			continue
		}

		p.reportOverflow(stack)
	}
}

func (p *placer) reportOverflow(stack hero.ItemStack) {
	slog.Warn("no slot available for stack, reporting overflow",
		"item_id", stack.ItemID, "quantity", stack.Quantity)
	p.overflow = append(p.overflow, stack)
}
