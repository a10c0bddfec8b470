package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/errors"
)

func validConfig() *catalog.Config {
	return &catalog.Config{
		Items: []catalog.Item{
			{ID: "torch", StackLimit: 10, Weight: 1},
			{ID: "rope", StackLimit: 1, Weight: 5},
			{ID: "explorers-pack", Tags: []catalog.ItemTag{catalog.TagPack, catalog.TagContainer},
				Contents: []catalog.ItemQuantity{{ItemID: "torch", Quantity: 2}}},
		},
		Weights: catalog.WeightData{
			Races: catalog.WeightTable{{Label: "Human", Weight: 60}, {Label: "Elf", Weight: 40}},
			ClassesByRace: map[string]catalog.WeightTable{
				"Human": {{Label: "Fighter", Weight: 100}},
				"Elf":   {{Label: "Wizard", Weight: 100}},
			},
			BackgroundsByRace: map[string]catalog.WeightTable{
				"Human": {{Label: "Soldier", Weight: 100}},
				"Elf":   {{Label: "Sage", Weight: 100}},
			},
			Alignments: catalog.WeightTable{{Label: "Neutral", Weight: 100}},
		},
		Templates: []catalog.EquipmentTemplate{
			{Class: "Fighter", Given: []catalog.ItemQuantity{{ItemID: "rope", Quantity: 1}},
				Choices: []catalog.ChoiceGroup{
					{ID: "choice-0", Kind: catalog.ChoiceSimple, Simple: []catalog.ChoiceOption{
						{OptionID: "torch", Item: catalog.ItemQuantity{ItemID: "torch", Quantity: 1}},
					}},
				}},
		},
		Classes:          []catalog.ClassStats{{Class: "Fighter", HitDie: 10}},
		GoldByBackground: map[string]int32{"Soldier": 1200},
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := catalog.NewRegistry(validConfig())
	require.NoError(t, err)

	item, ok := reg.Item("torch")
	require.True(t, ok)
	assert.Equal(t, int32(10), item.StackLimit)

	_, ok = reg.Item("missing")
	assert.False(t, ok)
}

func TestNewRegistryNilConfig(t *testing.T) {
	_, err := catalog.NewRegistry(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRegistryStackLimitDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Items = append(cfg.Items, catalog.Item{ID: "letter"}) // no stacking data
	reg, err := catalog.NewRegistry(cfg)
	require.NoError(t, err)

	limit, ok := reg.StackLimit("letter")
	assert.True(t, ok)
	assert.Equal(t, int32(1), limit)

	limit, ok = reg.StackLimit("unknown-item")
	assert.False(t, ok)
	assert.Equal(t, int32(1), limit)
}

func TestRegistryRaceMissingClassTable(t *testing.T) {
	cfg := validConfig()
	delete(cfg.Weights.ClassesByRace, "Elf")

	_, err := catalog.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
	assert.Contains(t, err.Error(), "Elf")
}

func TestRegistryRaceMissingBackgroundTable(t *testing.T) {
	cfg := validConfig()
	cfg.Weights.BackgroundsByRace["Human"] = nil

	_, err := catalog.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
}

func TestRegistryDanglingTemplateItem(t *testing.T) {
	cfg := validConfig()
	cfg.Templates[0].Given = append(cfg.Templates[0].Given, catalog.ItemQuantity{ItemID: "ghost-item", Quantity: 1})

	_, err := catalog.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
	assert.Contains(t, err.Error(), "ghost-item")
}

func TestRegistryDanglingPackContents(t *testing.T) {
	cfg := validConfig()
	cfg.Items[2].Contents = append(cfg.Items[2].Contents, catalog.ItemQuantity{ItemID: "phantom", Quantity: 1})

	_, err := catalog.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
}

func TestRegistryUnknownChoiceKind(t *testing.T) {
	cfg := validConfig()
	cfg.Templates[0].Choices = append(cfg.Templates[0].Choices, catalog.ChoiceGroup{
		ID: "choice-1", Kind: catalog.ChoiceKind("mystery"),
	})

	_, err := catalog.NewRegistry(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
}

func TestRegistryDefaults(t *testing.T) {
	reg, err := catalog.NewRegistry(validConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(1200), reg.StartingGold("Soldier"))
	assert.Equal(t, int32(catalog.DefaultGold), reg.StartingGold("Hermit"))

	cs := reg.ClassStats("Fighter")
	assert.Equal(t, int32(10), cs.HitDie)

	cs = reg.ClassStats("Mystery")
	assert.Equal(t, int32(catalog.DefaultHitDie), cs.HitDie)
	assert.Empty(t, cs.CastingAbility)
}

func TestRegistryConditionalTables(t *testing.T) {
	reg, err := catalog.NewRegistry(validConfig())
	require.NoError(t, err)

	table, err := reg.ClassTable("Human")
	require.NoError(t, err)
	assert.Equal(t, "Fighter", table[0].Label)

	_, err = reg.ClassTable("Dwarf")
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))

	_, err = reg.Template("Wizard")
	require.Error(t, err)
	assert.True(t, errors.IsCorruptData(err))
}
