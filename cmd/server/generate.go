package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/orchestrators/generation"
	"github.com/heroforge/hero-api/internal/pkg/clock"
	"github.com/heroforge/hero-api/internal/pkg/idgen"
	characterrepo "github.com/heroforge/hero-api/internal/repositories/character"
)

var generateKey string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive a character from an identity key",
	Long: `Derive a character sheet from an identity key using the built-in
reference data and print it as JSON, along with the equipment choices
the rolled class still has open. A random key is used when none is given.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateKey, "key", "", "64-character hex identity key (random if empty)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	key := generateKey
	if key == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate random key: %w", err)
		}
		key = hex.EncodeToString(buf)
	}

	registry, err := catalog.NewRegistry(catalog.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	service, err := generation.New(&generation.Config{
		CharacterRepo: characterrepo.NewMemory(clock.New()),
		Catalog:       registry,
		EventBus:      rpgevents.NewBus(),
		IDGenerator:   idgen.NewUUID("save"),
		Clock:         clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	generated, err := service.GenerateCharacter(ctx, &generation.GenerateCharacterInput{IdentityKey: key})
	if err != nil {
		return err
	}

	choices, err := service.ListEquipmentChoices(ctx, &generation.ListEquipmentChoicesInput{
		Class: generated.Character.Class,
	})
	if err != nil {
		return err
	}

	out := struct {
		IdentityKey string      `json:"identity_key"`
		Character   interface{} `json:"character"`
		Choices     interface{} `json:"equipment_choices"`
	}{
		IdentityKey: key,
		Character:   generated.Character,
		Choices:     choices.Groups,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
