package catalog

import "github.com/heroforge/hero-api/internal/entities/hero"

// DefaultConfig returns the built-in reference data set: the weighted
// generation tables, the item catalog, per-class equipment templates,
// class derivation stats, and starting gold. It is the data seeded into
// a fresh catalog store and the fixture for one-shot generation.
func DefaultConfig() *Config {
	return &Config{
		Items:            defaultItems(),
		Weights:          defaultWeights(),
		Templates:        defaultTemplates(),
		Classes:          defaultClassStats(),
		GoldByBackground: defaultStartingGold(),
	}
}

func defaultWeights() WeightData {
	return WeightData{
		Races: WeightTable{
			{Label: "Human", Weight: 36},
			{Label: "Elf", Weight: 12},
			{Label: "Dwarf", Weight: 14},
			{Label: "Halfling", Weight: 8},
			{Label: "Gnome", Weight: 6},
			{Label: "Orc", Weight: 10},
			{Label: "Half-Elf", Weight: 7},
			{Label: "Dragonborn", Weight: 2},
			{Label: "Tiefling", Weight: 3},
			{Label: "Half-Orc", Weight: 2},
		},
		ClassesByRace: map[string]WeightTable{
			"Human": {
				{Label: "Fighter", Weight: 12},
				{Label: "Rogue", Weight: 8},
				{Label: "Bard", Weight: 8},
				{Label: "Cleric", Weight: 8},
				{Label: "Paladin", Weight: 8},
				{Label: "Ranger", Weight: 8},
				{Label: "Monk", Weight: 8},
				{Label: "Barbarian", Weight: 8},
				{Label: "Druid", Weight: 8},
				{Label: "Sorcerer", Weight: 8},
				{Label: "Warlock", Weight: 8},
				{Label: "Wizard", Weight: 8},
			},
			"Elf": {
				{Label: "Wizard", Weight: 16},
				{Label: "Ranger", Weight: 16},
				{Label: "Rogue", Weight: 10},
				{Label: "Bard", Weight: 8},
				{Label: "Sorcerer", Weight: 8},
				{Label: "Fighter", Weight: 8},
				{Label: "Druid", Weight: 8},
				{Label: "Cleric", Weight: 8},
				{Label: "Monk", Weight: 8},
				{Label: "Warlock", Weight: 8},
				{Label: "Paladin", Weight: 4},
				{Label: "Barbarian", Weight: 4},
			},
			"Dwarf": {
				{Label: "Fighter", Weight: 18},
				{Label: "Barbarian", Weight: 18},
				{Label: "Cleric", Weight: 14},
				{Label: "Paladin", Weight: 14},
				{Label: "Monk", Weight: 8},
				{Label: "Ranger", Weight: 8},
				{Label: "Druid", Weight: 8},
				{Label: "Rogue", Weight: 2},
				{Label: "Sorcerer", Weight: 2},
				{Label: "Bard", Weight: 2},
				{Label: "Warlock", Weight: 2},
				{Label: "Wizard", Weight: 2},
			},
			"Halfling": {
				{Label: "Rogue", Weight: 20},
				{Label: "Ranger", Weight: 14},
				{Label: "Fighter", Weight: 14},
				{Label: "Monk", Weight: 10},
				{Label: "Bard", Weight: 10},
				{Label: "Sorcerer", Weight: 10},
				{Label: "Warlock", Weight: 10},
				{Label: "Cleric", Weight: 10},
				{Label: "Druid", Weight: 10},
				{Label: "Barbarian", Weight: 4},
				{Label: "Paladin", Weight: 4},
				{Label: "Wizard", Weight: 4},
			},
			"Gnome": {
				{Label: "Wizard", Weight: 20},
				{Label: "Rogue", Weight: 20},
				{Label: "Sorcerer", Weight: 8},
				{Label: "Fighter", Weight: 8},
				{Label: "Warlock", Weight: 8},
				{Label: "Bard", Weight: 8},
				{Label: "Ranger", Weight: 6},
				{Label: "Monk", Weight: 6},
				{Label: "Paladin", Weight: 6},
				{Label: "Cleric", Weight: 4},
				{Label: "Druid", Weight: 4},
				{Label: "Barbarian", Weight: 2},
			},
			"Orc": {
				{Label: "Barbarian", Weight: 22},
				{Label: "Fighter", Weight: 16},
				{Label: "Rogue", Weight: 12},
				{Label: "Druid", Weight: 12},
				{Label: "Warlock", Weight: 6},
				{Label: "Ranger", Weight: 6},
				{Label: "Monk", Weight: 6},
				{Label: "Cleric", Weight: 6},
				{Label: "Paladin", Weight: 6},
				{Label: "Sorcerer", Weight: 4},
				{Label: "Bard", Weight: 4},
				{Label: "Wizard", Weight: 4},
			},
			"Half-Elf": {
				{Label: "Bard", Weight: 14},
				{Label: "Sorcerer", Weight: 14},
				{Label: "Monk", Weight: 12},
				{Label: "Paladin", Weight: 10},
				{Label: "Rogue", Weight: 10},
				{Label: "Fighter", Weight: 8},
				{Label: "Cleric", Weight: 8},
				{Label: "Druid", Weight: 8},
				{Label: "Ranger", Weight: 8},
				{Label: "Wizard", Weight: 8},
				{Label: "Warlock", Weight: 6},
				{Label: "Barbarian", Weight: 4},
			},
			"Dragonborn": {
				{Label: "Paladin", Weight: 22},
				{Label: "Sorcerer", Weight: 14},
				{Label: "Warlock", Weight: 14},
				{Label: "Bard", Weight: 14},
				{Label: "Fighter", Weight: 8},
				{Label: "Barbarian", Weight: 8},
				{Label: "Monk", Weight: 8},
				{Label: "Rogue", Weight: 2},
				{Label: "Cleric", Weight: 2},
				{Label: "Druid", Weight: 2},
				{Label: "Ranger", Weight: 2},
				{Label: "Wizard", Weight: 2},
			},
			"Tiefling": {
				{Label: "Sorcerer", Weight: 18},
				{Label: "Warlock", Weight: 18},
				{Label: "Wizard", Weight: 10},
				{Label: "Bard", Weight: 10},
				{Label: "Paladin", Weight: 8},
				{Label: "Fighter", Weight: 8},
				{Label: "Rogue", Weight: 8},
				{Label: "Monk", Weight: 8},
				{Label: "Ranger", Weight: 8},
				{Label: "Cleric", Weight: 2},
				{Label: "Druid", Weight: 2},
				{Label: "Barbarian", Weight: 2},
			},
			"Half-Orc": {
				{Label: "Barbarian", Weight: 22},
				{Label: "Fighter", Weight: 22},
				{Label: "Monk", Weight: 10},
				{Label: "Cleric", Weight: 10},
				{Label: "Paladin", Weight: 10},
				{Label: "Warlock", Weight: 10},
				{Label: "Bard", Weight: 6},
				{Label: "Ranger", Weight: 6},
				{Label: "Druid", Weight: 6},
				{Label: "Rogue", Weight: 2},
				{Label: "Sorcerer", Weight: 2},
				{Label: "Wizard", Weight: 2},
			},
		},
		BackgroundsByRace: map[string]WeightTable{
			"Human": {
				{Label: "Folk Hero", Weight: 14},
				{Label: "Farmer", Weight: 14},
				{Label: "Soldier", Weight: 14},
				{Label: "Merchant", Weight: 12},
				{Label: "Artisan", Weight: 12},
				{Label: "Guard", Weight: 12},
				{Label: "Urchin", Weight: 11},
				{Label: "Noble", Weight: 11},
			},
			"Elf": {
				{Label: "Sage", Weight: 18},
				{Label: "Outlander", Weight: 16},
				{Label: "Hermit", Weight: 14},
				{Label: "Entertainer", Weight: 12},
				{Label: "Guide", Weight: 12},
				{Label: "Noble", Weight: 10},
				{Label: "Wayfarer", Weight: 10},
				{Label: "Scribe", Weight: 8},
			},
			"Dwarf": {
				{Label: "Artisan", Weight: 20},
				{Label: "Soldier", Weight: 16},
				{Label: "Guard", Weight: 14},
				{Label: "Merchant", Weight: 14},
				{Label: "Folk Hero", Weight: 12},
				{Label: "Outlander", Weight: 10},
				{Label: "Knight", Weight: 8},
				{Label: "Acolyte", Weight: 6},
			},
			"Halfling": {
				{Label: "Farmer", Weight: 18},
				{Label: "Folk Hero", Weight: 16},
				{Label: "Merchant", Weight: 14},
				{Label: "Entertainer", Weight: 12},
				{Label: "Charlatan", Weight: 12},
				{Label: "Criminal", Weight: 10},
				{Label: "Urchin", Weight: 10},
				{Label: "Wayfarer", Weight: 8},
			},
			"Gnome": {
				{Label: "Artisan", Weight: 20},
				{Label: "Sage", Weight: 16},
				{Label: "Charlatan", Weight: 14},
				{Label: "Merchant", Weight: 12},
				{Label: "Entertainer", Weight: 12},
				{Label: "Scribe", Weight: 10},
				{Label: "Hermit", Weight: 8},
				{Label: "Urchin", Weight: 8},
			},
			"Orc": {
				{Label: "Outlander", Weight: 22},
				{Label: "Soldier", Weight: 18},
				{Label: "Gladiator", Weight: 14},
				{Label: "Folk Hero", Weight: 12},
				{Label: "Guard", Weight: 10},
				{Label: "Pirate", Weight: 9},
				{Label: "Hermit", Weight: 8},
				{Label: "Urchin", Weight: 7},
			},
			"Half-Elf": {
				{Label: "Wayfarer", Weight: 16},
				{Label: "Entertainer", Weight: 14},
				{Label: "Charlatan", Weight: 13},
				{Label: "Sailor", Weight: 12},
				{Label: "Merchant", Weight: 12},
				{Label: "Sage", Weight: 11},
				{Label: "Urchin", Weight: 11},
				{Label: "Noble", Weight: 11},
			},
			"Dragonborn": {
				{Label: "Knight", Weight: 18},
				{Label: "Soldier", Weight: 16},
				{Label: "Acolyte", Weight: 14},
				{Label: "Gladiator", Weight: 13},
				{Label: "Noble", Weight: 13},
				{Label: "Sage", Weight: 10},
				{Label: "Outlander", Weight: 8},
				{Label: "Hermit", Weight: 8},
			},
			"Tiefling": {
				{Label: "Charlatan", Weight: 18},
				{Label: "Criminal", Weight: 16},
				{Label: "Urchin", Weight: 14},
				{Label: "Entertainer", Weight: 12},
				{Label: "Sage", Weight: 12},
				{Label: "Spy", Weight: 10},
				{Label: "Hermit", Weight: 9},
				{Label: "Sailor", Weight: 9},
			},
			"Half-Orc": {
				{Label: "Soldier", Weight: 18},
				{Label: "Gladiator", Weight: 16},
				{Label: "Outlander", Weight: 16},
				{Label: "Folk Hero", Weight: 12},
				{Label: "Guard", Weight: 12},
				{Label: "Criminal", Weight: 10},
				{Label: "Urchin", Weight: 8},
				{Label: "Pirate", Weight: 8},
			},
		},
		Alignments: WeightTable{
			{Label: "Lawful Good", Weight: 10},
			{Label: "Neutral Good", Weight: 10},
			{Label: "Chaotic Good", Weight: 10},
			{Label: "Lawful Neutral", Weight: 10},
			{Label: "True Neutral", Weight: 20},
			{Label: "Chaotic Neutral", Weight: 10},
			{Label: "Lawful Evil", Weight: 10},
			{Label: "Neutral Evil", Weight: 10},
			{Label: "Chaotic Evil", Weight: 10},
		},
	}
}

func defaultClassStats() []ClassStats {
	return []ClassStats{
		{Class: "Barbarian", HitDie: 12},
		{Class: "Fighter", HitDie: 10},
		{Class: "Paladin", HitDie: 10, CastingAbility: hero.AbilityCharisma},
		{Class: "Ranger", HitDie: 10, CastingAbility: hero.AbilityWisdom},
		{Class: "Monk", HitDie: 8},
		{Class: "Rogue", HitDie: 8},
		{Class: "Bard", HitDie: 8, CastingAbility: hero.AbilityCharisma},
		{Class: "Cleric", HitDie: 8, CastingAbility: hero.AbilityWisdom},
		{Class: "Druid", HitDie: 8, CastingAbility: hero.AbilityWisdom},
		{Class: "Warlock", HitDie: 8, CastingAbility: hero.AbilityCharisma},
		{Class: "Sorcerer", HitDie: 6, CastingAbility: hero.AbilityCharisma},
		{Class: "Wizard", HitDie: 6, CastingAbility: hero.AbilityIntelligence},
	}
}

func defaultStartingGold() map[string]int32 {
	return map[string]int32{
		"Acolyte":     900,
		"Artisan":     1300,
		"Charlatan":   1200,
		"Criminal":    1000,
		"Entertainer": 1000,
		"Farmer":      800,
		"Folk Hero":   900,
		"Gladiator":   1200,
		"Guard":       1000,
		"Guide":       900,
		"Hermit":      500,
		"Knight":      2000,
		"Merchant":    2000,
		"Noble":       2500,
		"Outlander":   700,
		"Pirate":      1100,
		"Sage":        900,
		"Sailor":      900,
		"Scribe":      900,
		"Soldier":     1100,
		"Spy":         1200,
		"Urchin":      400,
		"Wayfarer":    600,
	}
}

func defaultItems() []Item {
	equipment := []ItemTag{TagEquipment}
	weapon := []ItemTag{TagEquipment, TagWeapon}
	twoHanded := []ItemTag{TagEquipment, TagWeapon, TagTwoHanded}
	pack := []ItemTag{TagContainer, TagPack}
	container := []ItemTag{TagContainer}
	consumable := []ItemTag{TagConsumable}

	return []Item{
		// Weapons
		{ID: "longsword", Name: "Longsword", Tags: weapon, GearSlot: GearSlotHands, Weight: 3},
		{ID: "shortsword", Name: "Shortsword", Tags: weapon, GearSlot: GearSlotHands, Weight: 2},
		{ID: "greataxe", Name: "Greataxe", Tags: twoHanded, GearSlot: GearSlotHands, Weight: 7},
		{ID: "greatsword", Name: "Greatsword", Tags: twoHanded, GearSlot: GearSlotHands, Weight: 6},
		{ID: "battleaxe", Name: "Battleaxe", Tags: weapon, GearSlot: GearSlotHands, Weight: 4},
		{ID: "warhammer", Name: "Warhammer", Tags: weapon, GearSlot: GearSlotHands, Weight: 2},
		{ID: "handaxe", Name: "Handaxe", Tags: weapon, GearSlot: GearSlotHands, StackLimit: 2, Weight: 2},
		{ID: "mace", Name: "Mace", Tags: weapon, GearSlot: GearSlotHands, Weight: 4},
		{ID: "quarterstaff", Name: "Quarterstaff", Tags: weapon, GearSlot: GearSlotHands, Weight: 4},
		{ID: "dagger", Name: "Dagger", Tags: weapon, GearSlot: GearSlotHands, StackLimit: 2, Weight: 1},
		{ID: "rapier", Name: "Rapier", Tags: weapon, GearSlot: GearSlotHands, Weight: 2},
		{ID: "scimitar", Name: "Scimitar", Tags: weapon, GearSlot: GearSlotHands, Weight: 3},
		{ID: "sickle", Name: "Sickle", Tags: weapon, GearSlot: GearSlotHands, Weight: 2},
		{ID: "javelin", Name: "Javelin", Tags: weapon, GearSlot: GearSlotHands, StackLimit: 5, Weight: 2},
		{ID: "dart", Name: "Dart", Tags: weapon, GearSlot: GearSlotHands, StackLimit: 10, Weight: 0.25},
		{ID: "light-crossbow", Name: "Light Crossbow", Tags: twoHanded, GearSlot: GearSlotHands, Weight: 5},
		{ID: "shortbow", Name: "Shortbow", Tags: twoHanded, GearSlot: GearSlotHands, Weight: 2},
		{ID: "longbow", Name: "Longbow", Tags: twoHanded, GearSlot: GearSlotHands, Weight: 2},
		{ID: "shield", Name: "Shield", Tags: equipment, GearSlot: GearSlotHands, Weight: 6},

		// Ammunition
		{ID: "arrows", Name: "Arrows", Tags: equipment, GearSlot: GearSlotAmmunition, StackLimit: 20, Weight: 0.05},
		{ID: "crossbow-bolts", Name: "Crossbow Bolts", Tags: equipment, GearSlot: GearSlotAmmunition, StackLimit: 20, Weight: 0.075},

		// Armor and clothing
		{ID: "leather-armor", Name: "Leather Armor", Tags: equipment, GearSlot: GearSlotArmor, Weight: 10},
		{ID: "scale-mail", Name: "Scale Mail", Tags: equipment, GearSlot: GearSlotArmor, Weight: 45},
		{ID: "chain-mail", Name: "Chain Mail", Tags: equipment, GearSlot: GearSlotArmor, Weight: 55},
		{ID: "travelers-clothes", Name: "Traveler's Clothes", Tags: equipment, GearSlot: GearSlotClothes, Weight: 4},
		{ID: "fine-clothes", Name: "Fine Clothes", Tags: equipment, GearSlot: GearSlotClothes, Weight: 6},
		{ID: "costume", Name: "Costume", Tags: equipment, GearSlot: GearSlotClothes, Weight: 4},
		{ID: "vestments", Name: "Vestments", Tags: equipment, GearSlot: GearSlotClothes, Weight: 4},

		// Foci and class trinkets
		{ID: "holy-symbol", Name: "Holy Symbol", Tags: equipment, GearSlot: GearSlotNecklace, Weight: 1},
		{ID: "druidic-focus", Name: "Druidic Focus", Tags: equipment, GearSlot: GearSlotNecklace, Weight: 1},
		{ID: "arcane-focus", Name: "Arcane Focus", Tags: equipment, GearSlot: GearSlotNecklace, Weight: 1},
		{ID: "spellbook", Name: "Spellbook", Weight: 3},
		{ID: "thieves-tools", Name: "Thieves' Tools", Weight: 1},
		{ID: "disguise-kit", Name: "Disguise Kit", Weight: 3},
		{ID: "lute", Name: "Lute", Weight: 2},

		// Containers
		{ID: BackpackItemID, Name: "Backpack", Tags: container, GearSlot: GearSlotBag, Weight: 5, WeightIncrease: 30},
		{ID: "pouch", Name: "Pouch", Tags: container, Weight: 1},
		{ID: "component-pouch", Name: "Component Pouch", Tags: container, Weight: 2},

		// Adventuring gear
		{ID: "rations", Name: "Rations", Tags: consumable, StackLimit: 10, Weight: 2},
		{ID: "torch", Name: "Torch", StackLimit: 10, Weight: 1},
		{ID: "candle", Name: "Candle", StackLimit: 10, Weight: 0.1},
		{ID: "rope-hempen", Name: "Hempen Rope", Weight: 10},
		{ID: "waterskin", Name: "Waterskin", Tags: consumable, Weight: 5},
		{ID: "tinderbox", Name: "Tinderbox", Weight: 1},
		{ID: "bedroll", Name: "Bedroll", Weight: 7},
		{ID: "mess-kit", Name: "Mess Kit", Weight: 1},
		{ID: "crowbar", Name: "Crowbar", Weight: 5},
		{ID: "hammer", Name: "Hammer", Weight: 3},
		{ID: "piton", Name: "Piton", StackLimit: 10, Weight: 0.25},
		{ID: "ball-bearings", Name: "Ball Bearings", Weight: 2},
		{ID: "string", Name: "String", Weight: 0.1},
		{ID: "bell", Name: "Bell", Weight: 0.1},
		{ID: "lantern-hooded", Name: "Hooded Lantern", Weight: 2},
		{ID: "oil-flask", Name: "Oil Flask", Tags: consumable, StackLimit: 5, Weight: 1},
		{ID: "book", Name: "Book", Weight: 5},
		{ID: "ink", Name: "Ink", Weight: 0.1},
		{ID: "parchment", Name: "Parchment", StackLimit: 10, Weight: 0.05},
		{ID: "alms-box", Name: "Alms Box", Weight: 1},
		{ID: "incense", Name: "Incense", Tags: consumable, StackLimit: 10, Weight: 0.1},
		{ID: "censer", Name: "Censer", Weight: 1},

		// Packs. Contents are unpacked into the bag slot when the pack
		// is the first one placed; nested containers in the declared
		// contents are dropped.
		{ID: "explorers-pack", Name: "Explorer's Pack", Tags: pack, Weight: 59, Contents: []ItemQuantity{
			{ItemID: "bedroll", Quantity: 1},
			{ItemID: "mess-kit", Quantity: 1},
			{ItemID: "tinderbox", Quantity: 1},
			{ItemID: "torch", Quantity: 10},
			{ItemID: "rations", Quantity: 10},
			{ItemID: "waterskin", Quantity: 1},
			{ItemID: "rope-hempen", Quantity: 1},
		}},
		{ID: "dungeoneers-pack", Name: "Dungeoneer's Pack", Tags: pack, Weight: 61, Contents: []ItemQuantity{
			{ItemID: "crowbar", Quantity: 1},
			{ItemID: "hammer", Quantity: 1},
			{ItemID: "piton", Quantity: 10},
			{ItemID: "torch", Quantity: 10},
			{ItemID: "tinderbox", Quantity: 1},
			{ItemID: "rations", Quantity: 10},
			{ItemID: "waterskin", Quantity: 1},
			{ItemID: "rope-hempen", Quantity: 1},
		}},
		{ID: "burglars-pack", Name: "Burglar's Pack", Tags: pack, Weight: 44, Contents: []ItemQuantity{
			{ItemID: "ball-bearings", Quantity: 1},
			{ItemID: "string", Quantity: 1},
			{ItemID: "bell", Quantity: 1},
			{ItemID: "candle", Quantity: 5},
			{ItemID: "crowbar", Quantity: 1},
			{ItemID: "hammer", Quantity: 1},
			{ItemID: "piton", Quantity: 10},
			{ItemID: "lantern-hooded", Quantity: 1},
			{ItemID: "oil-flask", Quantity: 2},
			{ItemID: "rations", Quantity: 5},
			{ItemID: "tinderbox", Quantity: 1},
			{ItemID: "waterskin", Quantity: 1},
			{ItemID: "rope-hempen", Quantity: 1},
		}},
		{ID: "priests-pack", Name: "Priest's Pack", Tags: pack, Weight: 24, Contents: []ItemQuantity{
			{ItemID: "bedroll", Quantity: 1},
			{ItemID: "candle", Quantity: 10},
			{ItemID: "tinderbox", Quantity: 1},
			{ItemID: "alms-box", Quantity: 1},
			{ItemID: "incense", Quantity: 2},
			{ItemID: "censer", Quantity: 1},
			{ItemID: "vestments", Quantity: 1},
			{ItemID: "rations", Quantity: 2},
			{ItemID: "waterskin", Quantity: 1},
		}},
		{ID: "scholars-pack", Name: "Scholar's Pack", Tags: pack, Weight: 10, Contents: []ItemQuantity{
			{ItemID: "book", Quantity: 1},
			{ItemID: "ink", Quantity: 1},
			{ItemID: "parchment", Quantity: 10},
			{ItemID: "candle", Quantity: 5},
		}},
		{ID: "diplomats-pack", Name: "Diplomat's Pack", Tags: pack, Weight: 36, Contents: []ItemQuantity{
			{ItemID: "fine-clothes", Quantity: 1},
			{ItemID: "ink", Quantity: 1},
			{ItemID: "parchment", Quantity: 5},
			{ItemID: "candle", Quantity: 2},
		}},
		{ID: "entertainers-pack", Name: "Entertainer's Pack", Tags: pack, Weight: 38, Contents: []ItemQuantity{
			{ItemID: "bedroll", Quantity: 1},
			{ItemID: "costume", Quantity: 2},
			{ItemID: "candle", Quantity: 5},
			{ItemID: "rations", Quantity: 5},
			{ItemID: "waterskin", Quantity: 1},
			{ItemID: "disguise-kit", Quantity: 1},
		}},
	}
}

func defaultTemplates() []EquipmentTemplate {
	return []EquipmentTemplate{
		{
			Class: "Barbarian",
			Given: []ItemQuantity{
				{ItemID: "explorers-pack", Quantity: 1},
				{ItemID: "javelin", Quantity: 4},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Primary weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "greataxe", Item: ItemQuantity{ItemID: "greataxe", Quantity: 1}},
					{OptionID: "warhammer", Item: ItemQuantity{ItemID: "warhammer", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Secondary weapons", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "handaxes", Item: ItemQuantity{ItemID: "handaxe", Quantity: 2}},
					{OptionID: "javelins", Item: ItemQuantity{ItemID: "javelin", Quantity: 4}},
				}},
			},
		},
		{
			Class: "Bard",
			Given: []ItemQuantity{
				{ItemID: "leather-armor", Quantity: 1},
				{ItemID: "dagger", Quantity: 1},
				{ItemID: "lute", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "rapier", Item: ItemQuantity{ItemID: "rapier", Quantity: 1}},
					{OptionID: "longsword", Item: ItemQuantity{ItemID: "longsword", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "diplomat", Items: []ItemQuantity{{ItemID: "diplomats-pack", Quantity: 1}}},
					{OptionID: "entertainer", Items: []ItemQuantity{{ItemID: "entertainers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Cleric",
			Given: []ItemQuantity{
				{ItemID: "shield", Quantity: 1},
				{ItemID: "holy-symbol", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "mace", Item: ItemQuantity{ItemID: "mace", Quantity: 1}},
					{OptionID: "warhammer", Item: ItemQuantity{ItemID: "warhammer", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Armor", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "scale-mail", Item: ItemQuantity{ItemID: "scale-mail", Quantity: 1}},
					{OptionID: "leather", Item: ItemQuantity{ItemID: "leather-armor", Quantity: 1}},
					{OptionID: "chain-mail", Item: ItemQuantity{ItemID: "chain-mail", Quantity: 1}},
				}},
				{ID: "choice-2", Description: "Ranged option", Kind: ChoiceComplexWeapon, WeaponSlots: []WeaponSlot{
					{Options: []ChoiceOption{
						{OptionID: "crossbow", Item: ItemQuantity{ItemID: "light-crossbow", Quantity: 1}},
						{OptionID: "quarterstaff", Item: ItemQuantity{ItemID: "quarterstaff", Quantity: 1}},
					}},
					{Fixed: &ItemQuantity{ItemID: "crossbow-bolts", Quantity: 20}},
				}},
				{ID: "choice-3", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "priest", Items: []ItemQuantity{{ItemID: "priests-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Druid",
			Given: []ItemQuantity{
				{ItemID: "leather-armor", Quantity: 1},
				{ItemID: "explorers-pack", Quantity: 1},
				{ItemID: "druidic-focus", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Off hand", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "shield", Item: ItemQuantity{ItemID: "shield", Quantity: 1}},
					{OptionID: "sickle", Item: ItemQuantity{ItemID: "sickle", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "scimitar", Item: ItemQuantity{ItemID: "scimitar", Quantity: 1}},
					{OptionID: "quarterstaff", Item: ItemQuantity{ItemID: "quarterstaff", Quantity: 1}},
				}},
			},
		},
		{
			Class: "Fighter",
			Given: []ItemQuantity{
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Armor", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "knight", Items: []ItemQuantity{{ItemID: "chain-mail", Quantity: 1}}},
					{OptionID: "skirmisher", Items: []ItemQuantity{
						{ItemID: "leather-armor", Quantity: 1},
						{ItemID: "longbow", Quantity: 1},
						{ItemID: "arrows", Quantity: 20},
					}},
				}},
				{ID: "choice-1", Description: "Martial weapons", Kind: ChoiceComplexWeapon, WeaponSlots: []WeaponSlot{
					{Options: []ChoiceOption{
						{OptionID: "longsword", Item: ItemQuantity{ItemID: "longsword", Quantity: 1}},
						{OptionID: "battleaxe", Item: ItemQuantity{ItemID: "battleaxe", Quantity: 1}},
						{OptionID: "warhammer", Item: ItemQuantity{ItemID: "warhammer", Quantity: 1}},
					}},
					{Options: []ChoiceOption{
						{OptionID: "shield", Item: ItemQuantity{ItemID: "shield", Quantity: 1}},
						{OptionID: "shortsword", Item: ItemQuantity{ItemID: "shortsword", Quantity: 1}},
					}},
				}},
				{ID: "choice-2", Description: "Ranged option", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "crossbow", Items: []ItemQuantity{
						{ItemID: "light-crossbow", Quantity: 1},
						{ItemID: "crossbow-bolts", Quantity: 20},
					}},
					{OptionID: "handaxes", Items: []ItemQuantity{{ItemID: "handaxe", Quantity: 2}}},
				}},
				{ID: "choice-3", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Monk",
			Given: []ItemQuantity{
				{ItemID: "dart", Quantity: 10},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "shortsword", Item: ItemQuantity{ItemID: "shortsword", Quantity: 1}},
					{OptionID: "quarterstaff", Item: ItemQuantity{ItemID: "quarterstaff", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Paladin",
			Given: []ItemQuantity{
				{ItemID: "chain-mail", Quantity: 1},
				{ItemID: "holy-symbol", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Martial weapons", Kind: ChoiceComplexWeapon, WeaponSlots: []WeaponSlot{
					{Options: []ChoiceOption{
						{OptionID: "longsword", Item: ItemQuantity{ItemID: "longsword", Quantity: 1}},
						{OptionID: "warhammer", Item: ItemQuantity{ItemID: "warhammer", Quantity: 1}},
					}},
					{Options: []ChoiceOption{
						{OptionID: "shield", Item: ItemQuantity{ItemID: "shield", Quantity: 1}},
						{OptionID: "shortsword", Item: ItemQuantity{ItemID: "shortsword", Quantity: 1}},
					}},
				}},
				{ID: "choice-1", Description: "Secondary weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "javelins", Item: ItemQuantity{ItemID: "javelin", Quantity: 5}},
					{OptionID: "mace", Item: ItemQuantity{ItemID: "mace", Quantity: 1}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "priest", Items: []ItemQuantity{{ItemID: "priests-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Ranger",
			Given: []ItemQuantity{
				{ItemID: "longbow", Quantity: 1},
				{ItemID: "arrows", Quantity: 20},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Armor", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "scale-mail", Item: ItemQuantity{ItemID: "scale-mail", Quantity: 1}},
					{OptionID: "leather", Item: ItemQuantity{ItemID: "leather-armor", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Melee weapons", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "shortswords", Item: ItemQuantity{ItemID: "shortsword", Quantity: 2}},
					{OptionID: "handaxes", Item: ItemQuantity{ItemID: "handaxe", Quantity: 2}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Rogue",
			Given: []ItemQuantity{
				{ItemID: "leather-armor", Quantity: 1},
				{ItemID: "dagger", Quantity: 2},
				{ItemID: "thieves-tools", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "rapier", Item: ItemQuantity{ItemID: "rapier", Quantity: 1}},
					{OptionID: "shortsword", Item: ItemQuantity{ItemID: "shortsword", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Ranged option", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "shortbow", Items: []ItemQuantity{
						{ItemID: "shortbow", Quantity: 1},
						{ItemID: "arrows", Quantity: 20},
					}},
					{OptionID: "shortsword", Items: []ItemQuantity{{ItemID: "shortsword", Quantity: 1}}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "burglar", Items: []ItemQuantity{{ItemID: "burglars-pack", Quantity: 1}}},
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Sorcerer",
			Given: []ItemQuantity{
				{ItemID: "dagger", Quantity: 2},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "crossbow", Items: []ItemQuantity{
						{ItemID: "light-crossbow", Quantity: 1},
						{ItemID: "crossbow-bolts", Quantity: 20},
					}},
					{OptionID: "quarterstaff", Items: []ItemQuantity{{ItemID: "quarterstaff", Quantity: 1}}},
				}},
				{ID: "choice-1", Description: "Focus", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "component-pouch", Item: ItemQuantity{ItemID: "component-pouch", Quantity: 1}},
					{OptionID: "arcane-focus", Item: ItemQuantity{ItemID: "arcane-focus", Quantity: 1}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Warlock",
			Given: []ItemQuantity{
				{ItemID: "leather-armor", Quantity: 1},
				{ItemID: "dagger", Quantity: 2},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "crossbow", Items: []ItemQuantity{
						{ItemID: "light-crossbow", Quantity: 1},
						{ItemID: "crossbow-bolts", Quantity: 20},
					}},
					{OptionID: "sickle", Items: []ItemQuantity{{ItemID: "sickle", Quantity: 1}}},
				}},
				{ID: "choice-1", Description: "Focus", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "component-pouch", Item: ItemQuantity{ItemID: "component-pouch", Quantity: 1}},
					{OptionID: "arcane-focus", Item: ItemQuantity{ItemID: "arcane-focus", Quantity: 1}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "scholar", Items: []ItemQuantity{{ItemID: "scholars-pack", Quantity: 1}}},
					{OptionID: "dungeoneer", Items: []ItemQuantity{{ItemID: "dungeoneers-pack", Quantity: 1}}},
				}},
			},
		},
		{
			Class: "Wizard",
			Given: []ItemQuantity{
				{ItemID: "spellbook", Quantity: 1},
				{ItemID: "travelers-clothes", Quantity: 1},
			},
			Choices: []ChoiceGroup{
				{ID: "choice-0", Description: "Weapon", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "quarterstaff", Item: ItemQuantity{ItemID: "quarterstaff", Quantity: 1}},
					{OptionID: "dagger", Item: ItemQuantity{ItemID: "dagger", Quantity: 1}},
				}},
				{ID: "choice-1", Description: "Focus", Kind: ChoiceSimple, Simple: []ChoiceOption{
					{OptionID: "component-pouch", Item: ItemQuantity{ItemID: "component-pouch", Quantity: 1}},
					{OptionID: "arcane-focus", Item: ItemQuantity{ItemID: "arcane-focus", Quantity: 1}},
				}},
				{ID: "choice-2", Description: "Pack", Kind: ChoiceBundle, Bundles: []BundleOption{
					{OptionID: "scholar", Items: []ItemQuantity{{ItemID: "scholars-pack", Quantity: 1}}},
					{OptionID: "explorer", Items: []ItemQuantity{{ItemID: "explorers-pack", Quantity: 1}}},
				}},
			},
		},
	}
}
