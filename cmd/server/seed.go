package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/config"
	catalogrepo "github.com/heroforge/hero-api/internal/repositories/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog database",
	Long:  `Write the built-in reference data set into the catalog database. Re-running updates existing rows in place.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := catalogrepo.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Seed(ctx, catalog.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Load back through validation so a bad seed fails loudly here
	// rather than at server start.
	if _, err := store.Load(ctx); err != nil {
		return fmt.Errorf("seeded catalog failed validation: %w", err)
	}

	slog.Info("catalog seeded", "path", cfg.CatalogPath)
	return nil
}
