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

// LocationStore handles all location-related database operations.
type LocationStore struct {
	db *sql.DB
}

// NewLocationStore creates a new LocationStore with the given database connection.
func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

// FindBySlug retrieves a location by its slug. Returns nil if not found.
func (s *LocationStore) FindBySlug(ctx context.Context, slug string) (*models.Location, error) {
	l := &models.Location{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, state, meta_title, meta_description
		FROM locations WHERE slug = $1
	`, slug).Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.MetaTitle, &l.MetaDescription)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find location by slug: %w", err)
	}
	return l, nil
}

// List returns up to limit locations ordered by id.
func (s *LocationStore) List(ctx context.Context, limit int) ([]models.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, state, meta_title, meta_description
		FROM locations
		ORDER BY id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var items []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.MetaTitle, &l.MetaDescription); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// ListSlugs returns the slugs of all locations, ordered by id. Bounded by
// reference-data cardinality (dozens of rows), used for sitemap generation.
func (s *LocationStore) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list location slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan location slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Search returns locations whose name contains the term, case-insensitive.
func (s *LocationStore) Search(ctx context.Context, term string, limit int) ([]models.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, state, meta_title, meta_description
		FROM locations
		WHERE name ILIKE $1
		LIMIT $2
	`, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	defer rows.Close()

	var items []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.MetaTitle, &l.MetaDescription); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// BulkInsert inserts all given locations in one statement and returns them
// with generated IDs, in insert order. The returned (id, slug) pairs are
// what the bulk generator captures to build listings against.
func (s *LocationStore) BulkInsert(ctx context.Context, locs []models.Location) ([]models.Location, error) {
	if len(locs) == 0 {
		return nil, nil
	}

	const cols = 5
	args := make([]any, 0, len(locs)*cols)
	for _, l := range locs {
		args = append(args, l.Slug, l.Name, l.State, l.MetaTitle, l.MetaDescription)
	}

	query := `
		INSERT INTO locations (slug, name, state, meta_title, meta_description)
		VALUES ` + placeholders(len(locs), cols) + `
		RETURNING id, slug, name, state, meta_title, meta_description`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bulk insert locations: %w", err)
	}
	defer rows.Close()

	inserted := make([]models.Location, 0, len(locs))
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.MetaTitle, &l.MetaDescription); err != nil {
			return nil, fmt.Errorf("scan inserted location: %w", err)
		}
		inserted = append(inserted, l)
	}
	return inserted, rows.Err()
}

// DeleteBySlug removes a location. Fails if listings still reference it;
// location deletion does not cascade.
func (s *LocationStore) DeleteBySlug(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// Count returns the number of locations.
func (s *LocationStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return count, nil
}
