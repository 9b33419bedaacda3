// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the catalog's database access layer: one store
// per entity (locations, categories, listings) plus the cache audit log.
// Lookups return (nil, nil) for absent rows; absence is a result, not an
// error.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ResetCatalog truncates all three catalog tables and restarts their
// identity sequences. Destructive; used by the bulk generator before a
// full reseed.
func ResetCatalog(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		`TRUNCATE TABLE listings, locations, categories RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("reset catalog: %w", err)
	}
	return nil
}

// likePattern wraps a search term for case-insensitive substring matching.
func likePattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}

// placeholders builds a "($1,$2),($3,$4)" VALUES placeholder list for a
// multi-row insert of rows×cols parameters.
func placeholders(rows, cols int) string {
	var b strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", n)
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}
