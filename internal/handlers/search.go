// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"citydex/internal/search"
)

// Searcher is the one-method surface the search handler needs.
// Implemented by search.Aggregator.
type Searcher interface {
	Query(ctx context.Context, q string) (search.Envelope, error)
}

// Search handles the omni-search endpoint.
type Search struct {
	aggregator Searcher
}

// NewSearch creates the search handler group.
func NewSearch(aggregator Searcher) *Search {
	return &Search{aggregator: aggregator}
}

// Query serves GET /api/search?q=. Sub-threshold queries get an empty but
// well-formed envelope with a 200; a backend failure gets a 500 with no
// partial data.
func (s *Search) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	env, err := s.aggregator.Query(r.Context(), q)
	if err != nil {
		slog.Error("search failed", "query", q, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, env)
}
