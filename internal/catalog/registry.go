package catalog

import (
	"github.com/heroforge/hero-api/internal/errors"
)

// DefaultHitDie is used when a class has no stats row
const DefaultHitDie = 8

// DefaultGold is the starting gold when a background has no entry
const DefaultGold = 1000

// BackpackItemID is the generic container that occupies the bag slot
// when a pack is unpacked
const BackpackItemID = "backpack"

// Config holds the raw reference data for building a Registry
type Config struct {
	Items     []Item
	Weights   WeightData
	Templates []EquipmentTemplate
	Classes   []ClassStats
	// GoldByBackground maps a background label to starting gold
	GoldByBackground map[string]int32
}

// Registry is the process-lifetime, read-only view over the reference
// data. It is built once at startup, validated, and then shared by
// every generation run without further locking.
type Registry struct {
	items     map[string]*Item
	weights   WeightData
	templates map[string]*EquipmentTemplate
	classes   map[string]*ClassStats
	gold      map[string]int32
}

// NewRegistry validates the raw data and builds an immutable registry.
// Validation failures return CorruptData errors: they indicate a broken
// data set, not bad user input.
func NewRegistry(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	r := &Registry{
		items:     make(map[string]*Item, len(cfg.Items)),
		weights:   cfg.Weights,
		templates: make(map[string]*EquipmentTemplate, len(cfg.Templates)),
		classes:   make(map[string]*ClassStats, len(cfg.Classes)),
		gold:      make(map[string]int32, len(cfg.GoldByBackground)),
	}

	for i := range cfg.Items {
		item := cfg.Items[i]
		if item.ID == "" {
			return nil, errors.CorruptData("catalog item with empty ID")
		}
		if _, dup := r.items[item.ID]; dup {
			return nil, errors.CorruptDataf("duplicate catalog item %q", item.ID)
		}
		if item.StackLimit < 1 {
			item.StackLimit = 1
		}
		r.items[item.ID] = &item
	}

	for i := range cfg.Templates {
		tpl := cfg.Templates[i]
		if tpl.Class == "" {
			return nil, errors.CorruptData("equipment template with empty class")
		}
		r.templates[tpl.Class] = &tpl
	}

	for i := range cfg.Classes {
		cs := cfg.Classes[i]
		r.classes[cs.Class] = &cs
	}

	for bg, gold := range cfg.GoldByBackground {
		r.gold[bg] = gold
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// validate checks the cross-table invariants: every race in the race
// table must have class and background tables, and every item id a
// template or pack references must exist in the catalog.
func (r *Registry) validate() error {
	if len(r.weights.Races) == 0 {
		return errors.CorruptData("race weight table is empty")
	}
	if len(r.weights.Alignments) == 0 {
		return errors.CorruptData("alignment weight table is empty")
	}

	for _, race := range r.weights.Races {
		if len(r.weights.ClassesByRace[race.Label]) == 0 {
			return errors.CorruptDataf("race %q has no class weight table", race.Label)
		}
		if len(r.weights.BackgroundsByRace[race.Label]) == 0 {
			return errors.CorruptDataf("race %q has no background weight table", race.Label)
		}
	}

	for class, tpl := range r.templates {
		for _, iq := range tpl.Given {
			if err := r.checkItemRef(class, iq.ItemID); err != nil {
				return err
			}
		}
		for _, group := range tpl.Choices {
			if err := r.validateGroup(class, &group); err != nil {
				return err
			}
		}
	}

	for _, item := range r.items {
		for _, iq := range item.Contents {
			if _, ok := r.items[iq.ItemID]; !ok {
				return errors.CorruptDataf("pack %q references unknown item %q", item.ID, iq.ItemID)
			}
		}
	}

	return nil
}

func (r *Registry) validateGroup(class string, group *ChoiceGroup) error {
	switch group.Kind {
	case ChoiceSimple:
		for _, opt := range group.Simple {
			if err := r.checkItemRef(class, opt.Item.ItemID); err != nil {
				return err
			}
		}
	case ChoiceBundle:
		for _, bundle := range group.Bundles {
			for _, iq := range bundle.Items {
				if err := r.checkItemRef(class, iq.ItemID); err != nil {
					return err
				}
			}
		}
	case ChoiceComplexWeapon:
		for _, slot := range group.WeaponSlots {
			if slot.Fixed != nil {
				if err := r.checkItemRef(class, slot.Fixed.ItemID); err != nil {
					return err
				}
			}
			for _, opt := range slot.Options {
				if err := r.checkItemRef(class, opt.Item.ItemID); err != nil {
					return err
				}
			}
		}
	default:
		return errors.CorruptDataf("template for class %q: group %q has unknown kind %q",
			class, group.ID, group.Kind)
	}
	return nil
}

func (r *Registry) checkItemRef(class, itemID string) error {
	if _, ok := r.items[itemID]; !ok {
		return errors.CorruptDataf("template for class %q references unknown item %q", class, itemID)
	}
	return nil
}

// Item looks up a catalog item by id
func (r *Registry) Item(id string) (*Item, bool) {
	item, ok := r.items[id]
	return item, ok
}

// StackLimit returns the stack limit for an item, defaulting to 1 when
// the item is unknown or carries no stacking data. The second return
// reports whether the item was found.
func (r *Registry) StackLimit(id string) (int32, bool) {
	item, ok := r.items[id]
	if !ok {
		return 1, false
	}
	return item.StackLimit, true
}

// Races returns the unconditioned race weight table
func (r *Registry) Races() WeightTable {
	return r.weights.Races
}

// ClassTable returns the class weight table for a race
func (r *Registry) ClassTable(race string) (WeightTable, error) {
	table, ok := r.weights.ClassesByRace[race]
	if !ok || len(table) == 0 {
		return nil, errors.CorruptDataf("race %q has no class weight table", race)
	}
	return table, nil
}

// BackgroundTable returns the background weight table for a race
func (r *Registry) BackgroundTable(race string) (WeightTable, error) {
	table, ok := r.weights.BackgroundsByRace[race]
	if !ok || len(table) == 0 {
		return nil, errors.CorruptDataf("race %q has no background weight table", race)
	}
	return table, nil
}

// Alignments returns the unconditioned alignment weight table
func (r *Registry) Alignments() WeightTable {
	return r.weights.Alignments
}

// Template returns the equipment template for a class
func (r *Registry) Template(class string) (*EquipmentTemplate, error) {
	tpl, ok := r.templates[class]
	if !ok {
		return nil, errors.CorruptDataf("class %q has no equipment template", class)
	}
	return tpl, nil
}

// ClassStats returns the derivation inputs for a class. Unknown classes
// get the default hit die and no casting ability.
func (r *Registry) ClassStats(class string) ClassStats {
	if cs, ok := r.classes[class]; ok {
		return *cs
	}
	return ClassStats{Class: class, HitDie: DefaultHitDie}
}

// StartingGold returns the starting gold for a background
func (r *Registry) StartingGold(background string) int32 {
	if gold, ok := r.gold[background]; ok {
		return gold
	}
	return DefaultGold
}
