// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed bulk-populates the catalog with synthetic data. The run is
// a full clear-then-repopulate: truncate, insert locations, insert
// categories, then stream listings in fixed-size batches. The captured
// location and category sets are fixed before the first listing is
// generated, so denormalized slugs can never race with reference writes.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"citydex/internal/models"
	"citydex/internal/slug"
	"citydex/internal/store"
)

// Config controls one seeding run.
type Config struct {
	Locations     int
	Categories    int
	Listings      int
	BatchSize     int
	ProgressEvery int
}

// Dev returns the small interactive-development scale.
func Dev() Config {
	return Config{
		Locations:     20,
		Categories:    10,
		Listings:      2000,
		BatchSize:     500,
		ProgressEvery: 1000,
	}
}

// LoadTest returns the million-listing load-test scale.
func LoadTest() Config {
	return Config{
		Locations:     50,
		Categories:    15,
		Listings:      1_000_000,
		BatchSize:     2000,
		ProgressEvery: 50_000,
	}
}

// baseCities are always seeded first; the remainder are generated.
var baseCities = []string{"Austin", "New York", "San Francisco", "Chicago", "Miami"}

// services is the category pool, in seeding order.
var services = []string{
	"Coffee Shop", "Gym", "Plumber", "Dentist", "Lawyer",
	"Bakery", "Mechanic", "Florist", "Barber", "Yoga Studio",
	"Electrician", "HVAC", "Landscaper", "Painter", "Roofer",
}

// businessSuffixes give generated listing names a company-like shape.
var businessSuffixes = []string{"Co", "Works", "Studio", "Group", "Bros", "Services", "& Sons", "Supply"}

// Run executes one full seeding pass. Any error aborts the run: a failed
// batch must never leave a partially-seeded catalog accepted as valid.
func Run(ctx context.Context, db *sql.DB, cfg Config) error {
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("seed: batch size must be positive, got %d", cfg.BatchSize)
	}

	start := time.Now()
	slog.Info("seed starting",
		"locations", cfg.Locations,
		"categories", cfg.Categories,
		"listings", cfg.Listings,
		"batch_size", cfg.BatchSize,
	)

	// Phase 0: clean slate.
	if err := store.ResetCatalog(ctx, db); err != nil {
		return err
	}

	locations := store.NewLocationStore(db)
	categories := store.NewCategoryStore(db)
	listings := store.NewListingStore(db)

	// Phase 1: locations. Captured with generated IDs for phase 3.
	locs, err := locations.BulkInsert(ctx, generateLocations(cfg.Locations))
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	slog.Info("locations seeded", "count", len(locs))

	// Phase 2: categories.
	cats, err := categories.BulkInsert(ctx, generateCategories(cfg.Categories))
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	slog.Info("categories seeded", "count", len(cats))

	// Phase 3: listings, batched. The denormalized slug pair is copied
	// from the captured sets at generation time via models.NewListing.
	batch := make([]models.Listing, 0, cfg.BatchSize)
	flushed := 0
	for i := 0; i < cfg.Listings; i++ {
		loc := locs[rand.Intn(len(locs))]
		cat := cats[rand.Intn(len(cats))]

		name := listingName()
		batch = append(batch, models.NewListing(
			name,
			slug.WithIndex(name, i), // unique by running index, not by name
			listingDescription(name, cat.Name),
			&loc, &cat,
			rand.Intn(models.MaxRating-models.MinRating+1)+models.MinRating,
			fmt.Sprintf("https://%s.example.com", slug.Generate(name)),
		))

		if len(batch) >= cfg.BatchSize {
			if err := listings.BulkInsert(ctx, batch); err != nil {
				return fmt.Errorf("seed listings batch ending at row %d: %w", i+1, err)
			}
			flushed += len(batch)
			batch = batch[:0]

			if cfg.ProgressEvery > 0 && flushed%cfg.ProgressEvery == 0 {
				slog.Info("seed progress",
					"percent", fmt.Sprintf("%.1f", float64(flushed)/float64(cfg.Listings)*100),
					"rows", flushed,
					"elapsed", time.Since(start).Round(time.Second).String(),
				)
			}
		}
	}

	// Flush the remainder.
	if len(batch) > 0 {
		if err := listings.BulkInsert(ctx, batch); err != nil {
			return fmt.Errorf("seed listings final batch: %w", err)
		}
		flushed += len(batch)
	}

	slog.Info("seed complete",
		"listings", flushed,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// generateLocations builds n locations: the base cities first, generated
// names after. Slugs carry a short random token so duplicate generated
// city names stay unique.
func generateLocations(n int) []models.Location {
	out := make([]models.Location, 0, n)
	for i := 0; i < n; i++ {
		var city string
		if i < len(baseCities) {
			city = baseCities[i]
		} else {
			city = cityName()
		}

		state := "US"
		metaTitle := fmt.Sprintf("Best Services in %s", city)
		metaDescription := fmt.Sprintf("Find top rated services in %s", city)
		out = append(out, models.Location{
			Slug:            slug.WithToken(city, uuid.NewString()[:6]),
			Name:            city,
			State:           &state,
			MetaTitle:       &metaTitle,
			MetaDescription: &metaDescription,
		})
	}
	return out
}

// generateCategories builds n categories from the service pool, cycling
// with a numeric suffix if n exceeds the pool.
func generateCategories(n int) []models.Category {
	out := make([]models.Category, 0, n)
	for i := 0; i < n; i++ {
		name := services[i%len(services)]
		s := slug.Generate(name)
		if i >= len(services) {
			name = fmt.Sprintf("%s %d", name, i/len(services)+1)
			s = slug.Generate(name)
		}
		out = append(out, models.Category{Slug: s, Name: name})
	}
	return out
}

// listingName generates a company-like business name.
func listingName() string {
	base := titleCase(petname.Generate(2, " "))
	return base + " " + businessSuffixes[rand.Intn(len(businessSuffixes))]
}

// cityName generates a plausible city name.
func cityName() string {
	return titleCase(petname.Generate(1, "")) + "ville"
}

// titleCase capitalizes each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// listingDescription generates a short blurb for a listing.
func listingDescription(name, category string) string {
	return fmt.Sprintf("%s is a locally owned %s known for dependable service and fair prices.",
		name, strings.ToLower(category))
}
