package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/heroforge/hero-api/internal/config"
	"github.com/heroforge/hero-api/internal/handlers/httpapi"
	"github.com/heroforge/hero-api/internal/orchestrators/generation"
	"github.com/heroforge/hero-api/internal/pkg/clock"
	"github.com/heroforge/hero-api/internal/pkg/idgen"
	"github.com/heroforge/hero-api/internal/redis"
	catalogrepo "github.com/heroforge/hero-api/internal/repositories/catalog"
	characterrepo "github.com/heroforge/hero-api/internal/repositories/character"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the hero API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogging(cfg.LogLevel)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	store, err := catalogrepo.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer func() { _ = store.Close() }()

	registry, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	service, err := generation.New(&generation.Config{
		CharacterRepo: characterRepo,
		Catalog:       registry,
		EventBus:      rpgevents.NewBus(),
		IDGenerator:   idgen.NewUUID("save"),
		Clock:         clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{Service: service})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
