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

// CategoryStore handles all category-related database operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// scanCategory reads one category row. template_data is nullable, so it
// goes through a plain []byte before landing in the RawMessage field.
func scanCategory(s interface{ Scan(...any) error }) (models.Category, error) {
	var c models.Category
	var tpl []byte
	if err := s.Scan(&c.ID, &c.Slug, &c.Name, &tpl); err != nil {
		return c, err
	}
	c.TemplateData = tpl
	return c, nil
}

// FindBySlug retrieves a category by its slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, template_data
		FROM categories WHERE slug = $1
	`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return &c, nil
}

// List returns all categories ordered by id. Categories number in the
// tens, so no limit is needed.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, template_data
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListSlugs returns the slugs of all categories, ordered by id.
func (s *CategoryStore) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list category slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan category slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Search returns categories whose name contains the term, case-insensitive.
func (s *CategoryStore) Search(ctx context.Context, term string, limit int) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, template_data
		FROM categories
		WHERE name ILIKE $1
		LIMIT $2
	`, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// BulkInsert inserts all given categories in one statement and returns
// them with generated IDs, in insert order.
func (s *CategoryStore) BulkInsert(ctx context.Context, cats []models.Category) ([]models.Category, error) {
	if len(cats) == 0 {
		return nil, nil
	}

	const cols = 3
	args := make([]any, 0, len(cats)*cols)
	for _, c := range cats {
		// Empty template data is stored as NULL, not as an empty blob.
		var tpl any
		if len(c.TemplateData) > 0 {
			tpl = []byte(c.TemplateData)
		}
		args = append(args, c.Slug, c.Name, tpl)
	}

	query := `
		INSERT INTO categories (slug, name, template_data)
		VALUES ` + placeholders(len(cats), cols) + `
		RETURNING id, slug, name, template_data`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bulk insert categories: %w", err)
	}
	defer rows.Close()

	inserted := make([]models.Category, 0, len(cats))
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inserted category: %w", err)
		}
		inserted = append(inserted, c)
	}
	return inserted, rows.Err()
}

// DeleteBySlug removes a category. Listings referencing it are deleted by
// the ON DELETE CASCADE constraint.
func (s *CategoryStore) DeleteBySlug(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Count returns the number of categories.
func (s *CategoryStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
