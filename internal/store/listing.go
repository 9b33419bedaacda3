// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"citydex/internal/models"
)

// ListingStore handles all listing-related database operations.
type ListingStore struct {
	db *sql.DB
}

// NewListingStore creates a new ListingStore with the given database connection.
func NewListingStore(db *sql.DB) *ListingStore {
	return &ListingStore{db: db}
}

const listingColumns = `id, name, slug, description, location_id, category_id,
	location_slug, category_slug, website_url, rating`

func scanListing(rows *sql.Rows) (models.Listing, error) {
	var l models.Listing
	err := rows.Scan(
		&l.ID, &l.Name, &l.Slug, &l.Description, &l.LocationID, &l.CategoryID,
		&l.LocationSlug, &l.CategorySlug, &l.WebsiteURL, &l.Rating,
	)
	if err != nil {
		return l, fmt.Errorf("scan listing: %w", err)
	}
	return l, nil
}

// ListForPage returns listings for one (location, category) pair ordered
// by rating descending, capped at limit. This is the hottest query in the
// system; it resolves entirely from the denormalized composite index.
func (s *ListingStore) ListForPage(ctx context.Context, locationSlug, categorySlug string, limit int) ([]models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE location_slug = $1 AND category_slug = $2
		ORDER BY rating DESC
		LIMIT $3
	`, locationSlug, categorySlug, limit)
	if err != nil {
		return nil, fmt.Errorf("list listings for page: %w", err)
	}
	defer rows.Close()

	var items []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// ListByCategory returns listings across all locations for one category,
// ordered by rating descending.
func (s *ListingStore) ListByCategory(ctx context.Context, categorySlug string, limit int) ([]models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE category_slug = $1
		ORDER BY rating DESC
		LIMIT $2
	`, categorySlug, limit)
	if err != nil {
		return nil, fmt.Errorf("list listings by category: %w", err)
	}
	defer rows.Close()

	var items []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// Search returns listings whose name, description, or category slug
// contains the term, case-insensitive.
func (s *ListingStore) Search(ctx context.Context, term string, limit int) ([]models.Listing, error) {
	pattern := likePattern(term)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE name ILIKE $1 OR description ILIKE $1 OR category_slug ILIKE $1
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	var items []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// BulkInsert inserts one batch of listings in a single statement. Unlike
// the reference stores it does not return generated IDs; nothing
// downstream of the bulk generator needs them.
func (s *ListingStore) BulkInsert(ctx context.Context, listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	const cols = 9
	args := make([]any, 0, len(listings)*cols)
	for _, l := range listings {
		args = append(args,
			l.Name, l.Slug, l.Description, l.LocationID, l.CategoryID,
			l.LocationSlug, l.CategorySlug, l.WebsiteURL, l.Rating,
		)
	}

	query := `
		INSERT INTO listings (name, slug, description, location_id, category_id,
		                      location_slug, category_slug, website_url, rating)
		VALUES ` + placeholders(len(listings), cols)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk insert listings: %w", err)
	}
	return nil
}

// Count returns the number of listings.
func (s *ListingStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return count, nil
}

// CountMismatchedSlugs returns how many listings carry denormalized slugs
// that disagree with the location or category they reference. Always zero
// in a healthy catalog; exposed for audits and tests.
func (s *ListingStore) CountMismatchedSlugs(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM listings l
		JOIN locations loc ON loc.id = l.location_id
		JOIN categories cat ON cat.id = l.category_id
		WHERE l.location_slug <> loc.slug OR l.category_slug <> cat.slug
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count mismatched slugs: %w", err)
	}
	return count, nil
}
