package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/catalog"
	"storefront/internal/cli"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/store"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting store",
		zap.String("env", cfg.Server.Env),
		zap.Int("catalog_size", len(cfg.Catalog.Products)),
	)

	// Build the catalog and the store over it
	products, err := catalog.Build(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build catalog", zap.Error(err))
	}

	shop := store.New(products)
	menu := cli.NewMenu(shop, log, os.Stdin, os.Stdout)

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Menu loop error", zap.Error(err))
	}

	log.Info("Store session ended")
}
