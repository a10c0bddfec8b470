package engine

import (
	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/errors"
)

// Selection is one externally supplied answer to a choice group. Simple
// and Bundle groups use OptionID; ComplexWeapon groups use
// SlotOptionIDs, one entry per sub-choice slot in declared order.
type Selection struct {
	OptionID      string   `json:"option,omitempty"`
	SlotOptionIDs []string `json:"slot_options,omitempty"`
}

// ResolveEquipment expands a class's equipment template into the flat
// item request list: the guaranteed items plus one resolved selection
// per choice group. Finalization is blocked when any group lacks a
// selection.
func ResolveEquipment(tpl *catalog.EquipmentTemplate, selections map[string]Selection) ([]catalog.ItemQuantity, error) {
	requests := make([]catalog.ItemQuantity, 0, len(tpl.Given)+len(tpl.Choices))
	requests = append(requests, tpl.Given...)

	for i := range tpl.Choices {
		group := &tpl.Choices[i]

		sel, ok := selections[group.ID]
		if !ok {
			return nil, errors.UnresolvedChoicef("choice group %q has no selection", group.ID)
		}

		resolved, err := resolveGroup(group, sel)
		if err != nil {
			return nil, err
		}
		requests = append(requests, resolved...)
	}

	return requests, nil
}

// resolveGroup dispatches on the group kind. The switch is exhaustive
// over the tagged union; an unrecognized kind is corrupt data.
func resolveGroup(group *catalog.ChoiceGroup, sel Selection) ([]catalog.ItemQuantity, error) {
	switch group.Kind {
	case catalog.ChoiceSimple:
		return resolveSimple(group, sel)
	case catalog.ChoiceBundle:
		return resolveBundle(group, sel)
	case catalog.ChoiceComplexWeapon:
		return resolveComplexWeapon(group, sel)
	default:
		return nil, errors.CorruptDataf("choice group %q has unknown kind %q", group.ID, group.Kind)
	}
}

func resolveSimple(group *catalog.ChoiceGroup, sel Selection) ([]catalog.ItemQuantity, error) {
	for _, opt := range group.Simple {
		if opt.OptionID == sel.OptionID {
			return []catalog.ItemQuantity{opt.Item}, nil
		}
	}
	return nil, errors.InvalidArgumentf("choice group %q has no option %q", group.ID, sel.OptionID)
}

func resolveBundle(group *catalog.ChoiceGroup, sel Selection) ([]catalog.ItemQuantity, error) {
	for _, bundle := range group.Bundles {
		if bundle.OptionID == sel.OptionID {
			return bundle.Items, nil
		}
	}
	return nil, errors.InvalidArgumentf("choice group %q has no bundle %q", group.ID, sel.OptionID)
}

func resolveComplexWeapon(group *catalog.ChoiceGroup, sel Selection) ([]catalog.ItemQuantity, error) {
	var items []catalog.ItemQuantity
	choiceIdx := 0

	for slotIdx, slot := range group.WeaponSlots {
		if slot.Fixed != nil {
			items = append(items, *slot.Fixed)
			continue
		}

		if choiceIdx >= len(sel.SlotOptionIDs) {
			return nil, errors.UnresolvedChoicef(
				"choice group %q: weapon slot %d has no selection", group.ID, slotIdx)
		}
		optionID := sel.SlotOptionIDs[choiceIdx]
		choiceIdx++

		found := false
		for _, opt := range slot.Options {
			if opt.OptionID == optionID {
				items = append(items, opt.Item)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.InvalidArgumentf(
				"choice group %q: weapon slot %d has no option %q", group.ID, slotIdx, optionID)
		}
	}

	return items, nil
}
