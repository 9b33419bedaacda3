// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"citydex/internal/directory"
	"citydex/internal/models"
)

// PageService resolves and invalidates composed directory pages.
// Implemented by directory.Service.
type PageService interface {
	GetPage(ctx context.Context, locationSlug, categorySlug string) (*models.DirectoryPage, error)
	Invalidate(ctx context.Context, locationSlug, categorySlug string)
	InvalidateCategory(ctx context.Context, categorySlug string)
}

// InvalidationLogger records invalidation events. Implemented by
// store.CacheLogStore; may be nil.
type InvalidationLogger interface {
	Log(ctx context.Context, locationSlug, categorySlug, action string)
}

// Directory handles directory page and cache invalidation endpoints.
type Directory struct {
	pages    PageService
	cacheLog InvalidationLogger
}

// NewDirectory creates the directory handler group. cacheLog may be nil.
func NewDirectory(pages PageService, cacheLog InvalidationLogger) *Directory {
	return &Directory{pages: pages, cacheLog: cacheLog}
}

// directoryResponse is the JSON shape for one directory page: the
// composed data plus the derived metadata.
type directoryResponse struct {
	Location models.Location  `json:"location"`
	Category models.Category  `json:"category"`
	Items    []models.Listing `json:"items"`
	Meta     directory.Meta   `json:"meta"`
}

// Page serves GET /api/directory/{locationSlug}/{categorySlug}.
func (d *Directory) Page(w http.ResponseWriter, r *http.Request) {
	locSlug := chi.URLParam(r, "locationSlug")
	catSlug := chi.URLParam(r, "categorySlug")

	page, err := d.pages.GetPage(r.Context(), locSlug, catSlug)
	if err != nil {
		slog.Error("directory page failed", "location", locSlug, "category", catSlug, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	respondJSON(w, http.StatusOK, directoryResponse{
		Location: page.Location,
		Category: page.Category,
		Items:    page.Items,
		Meta:     directory.PageMeta(page),
	})
}

// Invalidate serves POST /admin/cache/invalidate. With both location and
// category it drops one page; with only a category it drops every page
// for that category. Never global.
func (d *Directory) Invalidate(w http.ResponseWriter, r *http.Request) {
	locSlug := r.URL.Query().Get("location")
	catSlug := r.URL.Query().Get("category")

	if catSlug == "" {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}

	ctx := r.Context()
	if locSlug == "" {
		d.pages.InvalidateCategory(ctx, catSlug)
		if d.cacheLog != nil {
			d.cacheLog.Log(ctx, "", catSlug, "invalidate-category")
		}
	} else {
		d.pages.Invalidate(ctx, locSlug, catSlug)
		if d.cacheLog != nil {
			d.cacheLog.Log(ctx, locSlug, catSlug, "invalidate")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}
