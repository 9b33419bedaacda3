// Package main is the offline bulk generator. It repopulates the catalog
// from scratch at either the interactive-dev scale or the load-test
// scale, or with explicit counts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"citydex/internal/cache"
	"citydex/internal/config"
	"citydex/internal/database"
	"citydex/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	scale := flag.String("scale", "dev", `seeding scale: "dev" or "load"`)
	listings := flag.Int("listings", 0, "override listing count")
	locations := flag.Int("locations", 0, "override location count")
	categories := flag.Int("categories", 0, "override category count")
	batchSize := flag.Int("batch", 0, "override batch size")
	skipCache := flag.Bool("skip-cache-flush", false, "do not flush the page cache after seeding")
	flag.Parse()

	var sc seed.Config
	switch *scale {
	case "dev":
		sc = seed.Dev()
	case "load":
		sc = seed.LoadTest()
	default:
		slog.Error("unknown scale", "scale", *scale)
		os.Exit(1)
	}
	if *listings > 0 {
		sc.Listings = *listings
	}
	if *locations > 0 {
		sc.Locations = *locations
	}
	if *categories > 0 {
		sc.Categories = *categories
	}
	if *batchSize > 0 {
		sc.BatchSize = *batchSize
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Ctrl-C aborts the run; the next run starts from a clean slate anyway.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := seed.Run(ctx, db, sc); err != nil {
		slog.Error("seed failed, catalog left incomplete; re-run from scratch", "error", err)
		os.Exit(1)
	}

	// Every page's content changed, so flush the composed-page cache.
	if !*skipCache {
		valkeyClient, err := cache.Connect(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unreachable, cached pages will go stale until TTL", "error", err)
			return
		}
		defer valkeyClient.Close()
		cache.NewDirectoryCache(valkeyClient, 0).InvalidateAll(ctx)
	}
}
