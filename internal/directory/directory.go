// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package directory composes one directory page from the catalog: both
// reference entities plus the ranked listings for the pair. The composed
// page is the unit of cache storage, keyed by (locationSlug, categorySlug).
package directory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"citydex/internal/models"
)

// PageSize is the fixed cap on listings per directory page.
const PageSize = 50

// LocationFinder resolves a location by slug; nil means absent.
type LocationFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Location, error)
}

// CategoryFinder resolves a category by slug; nil means absent.
type CategoryFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// ListingLister fetches the ranked listings for one page.
type ListingLister interface {
	ListForPage(ctx context.Context, locationSlug, categorySlug string, limit int) ([]models.Listing, error)
}

// PageCache stores composed pages by slug pair. Implemented by
// cache.DirectoryCache; may be nil to run uncached.
type PageCache interface {
	Get(ctx context.Context, locationSlug, categorySlug string) (*models.DirectoryPage, bool)
	Set(ctx context.Context, page *models.DirectoryPage)
	Invalidate(ctx context.Context, locationSlug, categorySlug string)
	InvalidateCategory(ctx context.Context, categorySlug string)
}

// Service resolves directory pages, caching composed results per slug pair.
type Service struct {
	locations  LocationFinder
	categories CategoryFinder
	listings   ListingLister
	cache      PageCache

	// Coalesces concurrent fills of the same uncached key, so at most one
	// computation populates a given cache entry at a time.
	group singleflight.Group
}

// NewService creates a directory service. cache may be nil, in which case
// every request recomputes the page.
func NewService(locations LocationFinder, categories CategoryFinder, listings ListingLister, cache PageCache) *Service {
	return &Service{
		locations:  locations,
		categories: categories,
		listings:   listings,
		cache:      cache,
	}
}

// GetPage returns the composed page for a slug pair, or (nil, nil) when
// either the location or the category does not exist. Absence is a
// result, not an error; partial pages are never returned.
func (s *Service) GetPage(ctx context.Context, locationSlug, categorySlug string) (*models.DirectoryPage, error) {
	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, locationSlug, categorySlug); ok {
			return page, nil
		}
	}

	key := locationSlug + "/" + categorySlug
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.compose(ctx, locationSlug, categorySlug)
	})
	if err != nil {
		return nil, err
	}
	// A not-found compose yields a typed nil inside the any.
	page := v.(*models.DirectoryPage)
	if page == nil {
		return nil, nil
	}
	return page, nil
}

// compose resolves both reference entities in parallel, then fetches the
// ranked listings and caches the result.
func (s *Service) compose(ctx context.Context, locationSlug, categorySlug string) (*models.DirectoryPage, error) {
	var (
		loc *models.Location
		cat *models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		loc, err = s.locations.FindBySlug(gctx, locationSlug)
		return err
	})
	g.Go(func() error {
		var err error
		cat, err = s.categories.FindBySlug(gctx, categorySlug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve page references: %w", err)
	}

	if loc == nil || cat == nil {
		return nil, nil
	}

	items, err := s.listings.ListForPage(ctx, locationSlug, categorySlug, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list page items: %w", err)
	}
	if items == nil {
		items = []models.Listing{}
	}

	page := &models.DirectoryPage{Location: *loc, Category: *cat, Items: items}
	if s.cache != nil {
		s.cache.Set(ctx, page)
	}
	return page, nil
}

// Invalidate drops the cached page for one slug pair.
func (s *Service) Invalidate(ctx context.Context, locationSlug, categorySlug string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, locationSlug, categorySlug)
	}
}

// InvalidateCategory drops every cached page for one category.
func (s *Service) InvalidateCategory(ctx context.Context, categorySlug string) {
	if s.cache != nil {
		s.cache.InvalidateCategory(ctx, categorySlug)
	}
}
