// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/beevik/etree"
)

// SlugLister enumerates the slugs of one reference collection.
type SlugLister interface {
	ListSlugs(ctx context.Context) ([]string, error)
}

// Sitemap generates the sitemap over the full location × category cross
// product. The document size is bounded by reference-data cardinality
// (dozens × tens of slugs), never by listing count.
type Sitemap struct {
	baseURL    string
	locations  SlugLister
	categories SlugLister
}

// NewSitemap creates the sitemap handler.
func NewSitemap(baseURL string, locations, categories SlugLister) *Sitemap {
	return &Sitemap{baseURL: baseURL, locations: locations, categories: categories}
}

// Serve handles GET /sitemap.xml.
func (s *Sitemap) Serve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locSlugs, err := s.locations.ListSlugs(ctx)
	if err != nil {
		slog.Error("sitemap location slugs failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	catSlugs, err := s.categories.ListSlugs(ctx)
	if err != nil {
		slog.Error("sitemap category slugs failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	doc := s.build(locSlugs, catSlugs, time.Now())

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		slog.Error("write sitemap", "error", err)
	}
}

// build assembles the sitemap document: the homepage plus one entry per
// (location, category) combination.
func (s *Sitemap) build(locSlugs, catSlugs []string, now time.Time) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	lastMod := now.Format("2006-01-02")

	addURL := func(loc, changeFreq, priority string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
		u.CreateElement("lastmod").SetText(lastMod)
		u.CreateElement("changefreq").SetText(changeFreq)
		u.CreateElement("priority").SetText(priority)
	}

	addURL(s.baseURL, "daily", "1.0")

	for _, locSlug := range locSlugs {
		for _, catSlug := range catSlugs {
			addURL(s.baseURL+"/directory/"+locSlug+"/"+catSlug, "weekly", "0.8")
		}
	}

	return doc
}
