package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	entcatalog "github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
	"github.com/heroforge/hero-api/internal/errors"
	catalogstore "github.com/heroforge/hero-api/internal/repositories/catalog"
)

type StoreTestSuite struct {
	suite.Suite
	store *catalogstore.Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	store, err := catalogstore.Open(":memory:")
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreTestSuite) seedConfig() *entcatalog.Config {
	return &entcatalog.Config{
		Items: []entcatalog.Item{
			{ID: "dagger", Name: "Dagger",
				Tags:     []entcatalog.ItemTag{entcatalog.TagEquipment, entcatalog.TagWeapon},
				GearSlot: entcatalog.GearSlotHands, StackLimit: 1, Weight: 1},
			{ID: "ration", Name: "Ration",
				Tags:       []entcatalog.ItemTag{entcatalog.TagConsumable},
				StackLimit: 10, Weight: 2},
			{ID: "backpack", Name: "Backpack",
				Tags:     []entcatalog.ItemTag{entcatalog.TagEquipment, entcatalog.TagContainer},
				GearSlot: entcatalog.GearSlotBag, StackLimit: 1, Weight: 5, WeightIncrease: 30},
		},
		Weights: entcatalog.WeightData{
			Races: entcatalog.WeightTable{{Label: "Human", Weight: 100}},
			ClassesByRace: map[string]entcatalog.WeightTable{
				"Human": {{Label: "Rogue", Weight: 100}},
			},
			BackgroundsByRace: map[string]entcatalog.WeightTable{
				"Human": {{Label: "Urchin", Weight: 100}},
			},
			Alignments: entcatalog.WeightTable{{Label: "Neutral", Weight: 100}},
		},
		Templates: []entcatalog.EquipmentTemplate{
			{
				Class: "Rogue",
				Given: []entcatalog.ItemQuantity{{ItemID: "dagger", Quantity: 2}},
				Choices: []entcatalog.ChoiceGroup{
					{ID: "choice-0", Kind: entcatalog.ChoiceSimple,
						Simple: []entcatalog.ChoiceOption{
							{OptionID: "ration", Item: entcatalog.ItemQuantity{ItemID: "ration", Quantity: 5}},
							{OptionID: "backpack", Item: entcatalog.ItemQuantity{ItemID: "backpack", Quantity: 1}},
						}},
				},
			},
		},
		Classes: []entcatalog.ClassStats{
			{Class: "Rogue", HitDie: 8},
			{Class: "Wizard", HitDie: 6, CastingAbility: hero.AbilityIntelligence},
		},
		GoldByBackground: map[string]int32{"Urchin": 600},
	}
}

func (s *StoreTestSuite) TestSeedAndLoadRoundTrip() {
	s.Require().NoError(s.store.Seed(s.ctx, s.seedConfig()))

	reg, err := s.store.Load(s.ctx)
	s.Require().NoError(err)

	item, ok := reg.Item("dagger")
	s.Require().True(ok)
	s.Equal("Dagger", item.Name)
	s.True(item.HasTag(entcatalog.TagWeapon))
	s.Equal(entcatalog.GearSlotHands, item.GearSlot)

	limit, known := reg.StackLimit("ration")
	s.True(known)
	s.Equal(int32(10), limit)

	s.Equal(entcatalog.WeightTable{{Label: "Human", Weight: 100}}, reg.Races())

	classes, err := reg.ClassTable("Human")
	s.Require().NoError(err)
	s.Equal("Rogue", classes[0].Label)

	backgrounds, err := reg.BackgroundTable("Human")
	s.Require().NoError(err)
	s.Equal("Urchin", backgrounds[0].Label)

	tpl, err := reg.Template("Rogue")
	s.Require().NoError(err)
	s.Require().Len(tpl.Choices, 1)
	s.Equal(entcatalog.ChoiceSimple, tpl.Choices[0].Kind)

	stats := reg.ClassStats("Wizard")
	s.Equal(int32(6), stats.HitDie)
	s.Equal(hero.AbilityIntelligence, stats.CastingAbility)

	s.Equal(int32(600), reg.StartingGold("Urchin"))
	s.Equal(int32(entcatalog.DefaultGold), reg.StartingGold("Unknown"))
}

func (s *StoreTestSuite) TestSeedIsIdempotent() {
	cfg := s.seedConfig()
	s.Require().NoError(s.store.Seed(s.ctx, cfg))

	cfg.GoldByBackground["Urchin"] = 900
	s.Require().NoError(s.store.Seed(s.ctx, cfg))

	reg, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(int32(900), reg.StartingGold("Urchin"))
}

func (s *StoreTestSuite) TestLoadValidatesCrossTableInvariant() {
	cfg := s.seedConfig()
	delete(cfg.Weights.BackgroundsByRace, "Human")
	s.Require().NoError(s.store.Seed(s.ctx, cfg))

	_, err := s.store.Load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsCorruptData(err))
}

func (s *StoreTestSuite) TestSeedRejectsNilConfig() {
	err := s.store.Seed(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestOpenRejectsEmptyPath() {
	_, err := catalogstore.Open("")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
