// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search aggregates free-text lookups across listings, locations,
// and categories into one envelope. The three lookups run in parallel;
// results stay in their own sections with independent caps, no blended
// relevance score.
package search

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"citydex/internal/models"
)

// Per-section result caps.
const (
	ListingLimit  = 5
	LocationLimit = 3
	CategoryLimit = 3
)

// MinQueryLength is the noise filter: shorter queries get an empty
// envelope without touching the store.
const MinQueryLength = 2

// ListingSearcher matches listings by name, description, or category slug.
type ListingSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.Listing, error)
}

// LocationSearcher matches locations by name.
type LocationSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.Location, error)
}

// CategorySearcher matches categories by name.
type CategorySearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.Category, error)
}

// ListingHit is one listing search result.
type ListingHit struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// LocationHit is one location search result.
type LocationHit struct {
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	State *string `json:"state,omitempty"`
}

// CategoryHit is one category search result.
type CategoryHit struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Envelope is the merged result set. Sections are always non-nil so the
// JSON form is well-formed even when empty.
type Envelope struct {
	Listings   []ListingHit  `json:"listings"`
	Locations  []LocationHit `json:"locations"`
	Categories []CategoryHit `json:"categories"`
}

func emptyEnvelope() Envelope {
	return Envelope{
		Listings:   []ListingHit{},
		Locations:  []LocationHit{},
		Categories: []CategoryHit{},
	}
}

// Aggregator fans a query out to the three collections and joins the
// results.
type Aggregator struct {
	listings   ListingSearcher
	locations  LocationSearcher
	categories CategorySearcher
}

// NewAggregator creates a search aggregator over the three stores.
func NewAggregator(listings ListingSearcher, locations LocationSearcher, categories CategorySearcher) *Aggregator {
	return &Aggregator{listings: listings, locations: locations, categories: categories}
}

// Query runs the three lookups in parallel and merges them. Queries under
// MinQueryLength return an empty envelope immediately. If any lookup
// fails the whole request fails; partial envelopes are never returned.
func (a *Aggregator) Query(ctx context.Context, q string) (Envelope, error) {
	q = strings.TrimSpace(q)
	if len(q) < MinQueryLength {
		return emptyEnvelope(), nil
	}

	env := emptyEnvelope()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := a.listings.Search(gctx, q, ListingLimit)
		if err != nil {
			return fmt.Errorf("search listings: %w", err)
		}
		for _, l := range items {
			env.Listings = append(env.Listings, ListingHit{Name: l.Name, Slug: l.Slug, Description: l.Description})
		}
		return nil
	})

	g.Go(func() error {
		items, err := a.locations.Search(gctx, q, LocationLimit)
		if err != nil {
			return fmt.Errorf("search locations: %w", err)
		}
		for _, l := range items {
			env.Locations = append(env.Locations, LocationHit{Name: l.Name, Slug: l.Slug, State: l.State})
		}
		return nil
	})

	g.Go(func() error {
		items, err := a.categories.Search(gctx, q, CategoryLimit)
		if err != nil {
			return fmt.Errorf("search categories: %w", err)
		}
		for _, c := range items {
			env.Categories = append(env.Categories, CategoryHit{Name: c.Name, Slug: c.Slug})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}
