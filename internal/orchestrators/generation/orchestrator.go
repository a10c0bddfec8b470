package generation

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/engine"
	"github.com/heroforge/hero-api/internal/entities/hero"
	"github.com/heroforge/hero-api/internal/errors"
	"github.com/heroforge/hero-api/internal/pkg/clock"
	"github.com/heroforge/hero-api/internal/pkg/idgen"
	characterrepo "github.com/heroforge/hero-api/internal/repositories/character"
)

// Config holds the dependencies for the generation orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       *catalog.Registry
	EventBus      events.EventBus
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	catalog       *catalog.Registry
	eventBus      events.EventBus
	idGenerator   idgen.Generator
	clock         clock.Clock
}

// New creates a new generation orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		eventBus:      cfg.EventBus,
		idGenerator:   cfg.IDGenerator,
		clock:         c,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// GenerateCharacter derives a character sheet from an identity key
func (o *Orchestrator) GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.generate(input.IdentityKey)
	if err != nil {
		return nil, err
	}

	return &GenerateCharacterOutput{Character: character}, nil
}

// ListEquipmentChoices exposes a class's unresolved choice groups
func (o *Orchestrator) ListEquipmentChoices(ctx context.Context, input *ListEquipmentChoicesInput) (*ListEquipmentChoicesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Class == "" {
		return nil, errors.InvalidArgument("class is required")
	}

	tpl, err := o.catalog.Template(input.Class)
	if err != nil {
		// The class name came from the caller, not from a sampled draw
		return nil, errors.NotFoundf("class %q not found", input.Class)
	}

	return &ListEquipmentChoicesOutput{
		Class:  tpl.Class,
		Groups: tpl.Choices,
	}, nil
}

// FinalizeCharacter runs the full pipeline and persists the result
func (o *Orchestrator) FinalizeCharacter(ctx context.Context, input *FinalizeCharacterInput) (*FinalizeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.generate(input.IdentityKey)
	if err != nil {
		return nil, err
	}

	tpl, err := o.catalog.Template(character.Class)
	if err != nil {
		return nil, err
	}

	requests, err := engine.ResolveEquipment(tpl, input.Selections)
	if err != nil {
		return nil, err
	}

	stacks := engine.MergeStacks(o.catalog, requests)
	placed := engine.PlaceStacks(o.catalog, stacks)
	weight := engine.AccountWeight(o.catalog, placed.Inventory, character.Gold, character.Abilities.Strength)

	record := &characterrepo.Record{
		SaveID:    o.idGenerator.Generate(),
		Pubkey:    character.Pubkey,
		Character: character,
		Inventory: placed.Inventory,
		CreatedAt: o.clock.Now().UTC(),
	}

	saved, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Record: record})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character finalized",
		"pubkey", character.Pubkey,
		"save_id", saved.Record.SaveID,
		"class", character.Class,
		"race", character.Race,
		"overflow_stacks", len(placed.Overflow),
	)

	return &FinalizeCharacterOutput{
		SaveID:    saved.Record.SaveID,
		Character: saved.Record.Character,
		Inventory: saved.Record.Inventory,
		Overflow:  placed.Overflow,
		Weight:    weight,
	}, nil
}

// GetCharacter loads a previously finalized character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.IdentityKey == "" {
		return nil, errors.InvalidArgument("identity key is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Pubkey: input.IdentityKey})
	if err != nil {
		return nil, err
	}

	record := got.Record
	weight := engine.AccountWeight(o.catalog, record.Inventory, record.Character.Gold, record.Character.Abilities.Strength)

	return &GetCharacterOutput{
		SaveID:    record.SaveID,
		Character: record.Character,
		Inventory: record.Inventory,
		Weight:    weight,
	}, nil
}

// generate runs the deterministic sheet derivation: seed, sample race,
// class, background, alignment, roll abilities, derive vitals and gold.
// Draw order is fixed; every step consumes from the one seeded stream.
func (o *Orchestrator) generate(identityKey string) (*hero.Character, error) {
	seed, err := engine.SeedFromIdentityKey(identityKey)
	if err != nil {
		return nil, err
	}

	roller := engine.NewSeededRoller(seed)

	race, err := engine.SampleWeighted(roller, o.catalog.Races())
	if err != nil {
		return nil, err
	}

	classTable, err := o.catalog.ClassTable(race)
	if err != nil {
		return nil, err
	}
	class, err := engine.SampleWeighted(roller, classTable)
	if err != nil {
		return nil, err
	}

	backgroundTable, err := o.catalog.BackgroundTable(race)
	if err != nil {
		return nil, err
	}
	background, err := engine.SampleWeighted(roller, backgroundTable)
	if err != nil {
		return nil, err
	}

	alignment, err := engine.SampleWeighted(roller, o.catalog.Alignments())
	if err != nil {
		return nil, err
	}

	scores, err := engine.RollAbilityScores(roller)
	if err != nil {
		return nil, err
	}

	hp, mana := engine.DeriveVitals(o.catalog, class, scores)

	return &hero.Character{
		Pubkey:     identityKey,
		Race:       race,
		Class:      class,
		Background: background,
		Alignment:  alignment,
		Abilities:  scores,
		HitPoints:  hp,
		Mana:       mana,
		Gold:       o.catalog.StartingGold(background),
		Seed:       seed,
	}, nil
}
