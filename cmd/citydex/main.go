// Package main is the entry point for the citydex directory server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citydex/internal/cache"
	"citydex/internal/config"
	"citydex/internal/database"
	"citydex/internal/directory"
	"citydex/internal/handlers"
	"citydex/internal/router"
	"citydex/internal/search"
	"citydex/internal/seed"
	"citydex/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	locationStore := store.NewLocationStore(db)
	categoryStore := store.NewCategoryStore(db)
	listingStore := store.NewListingStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	// Seed development data when the catalog is empty.
	if cfg.IsDev() {
		ctx := context.Background()
		if n, err := locationStore.Count(ctx); err == nil && n == 0 {
			if err := seed.Run(ctx, db, seed.Dev()); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}
	}

	// Connect to Valkey (Redis-compatible cache).
	valkeyClient, err := cache.Connect(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Composed-page cache keyed by (location, category).
	pageCache := cache.NewDirectoryCache(valkeyClient, cache.DefaultDirectoryTTL)

	// Directory query service and search aggregator.
	dirService := directory.NewService(locationStore, categoryStore, listingStore, pageCache)
	aggregator := search.NewAggregator(listingStore, locationStore, categoryStore)

	// Create handler groups with their dependencies.
	searchHandlers := handlers.NewSearch(aggregator)
	dirHandlers := handlers.NewDirectory(dirService, cacheLogStore)
	sitemapHandlers := handlers.NewSitemap(cfg.BaseURL, locationStore, categoryStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(searchHandlers, dirHandlers, sitemapHandlers)

	// Create the HTTP server with sensible timeouts. Read paths are all
	// bounded index lookups, so the write timeout stays short.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
