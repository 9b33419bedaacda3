// handler_test.go provides fakes shared by the handler unit tests. The
// handlers depend on narrow interfaces, so these tests run without
// PostgreSQL or Valkey.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"citydex/internal/models"
	"citydex/internal/search"
)

// fakeSearcher implements Searcher.
type fakeSearcher struct {
	env search.Envelope
	err error
}

func (f *fakeSearcher) Query(_ context.Context, q string) (search.Envelope, error) {
	if f.err != nil {
		return search.Envelope{}, f.err
	}
	if len(q) < search.MinQueryLength {
		return search.Envelope{
			Listings:   []search.ListingHit{},
			Locations:  []search.LocationHit{},
			Categories: []search.CategoryHit{},
		}, nil
	}
	return f.env, nil
}

// fakePages implements PageService.
type fakePages struct {
	page *models.DirectoryPage
	err  error

	invalidated         [][2]string
	categoryInvalidated []string
}

func (f *fakePages) GetPage(_ context.Context, locSlug, catSlug string) (*models.DirectoryPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.page != nil && f.page.Location.Slug == locSlug && f.page.Category.Slug == catSlug {
		return f.page, nil
	}
	return nil, nil
}

func (f *fakePages) Invalidate(_ context.Context, locSlug, catSlug string) {
	f.invalidated = append(f.invalidated, [2]string{locSlug, catSlug})
}

func (f *fakePages) InvalidateCategory(_ context.Context, catSlug string) {
	f.categoryInvalidated = append(f.categoryInvalidated, catSlug)
}

// fakeSlugs implements SlugLister.
type fakeSlugs struct {
	slugs []string
	err   error
}

func (f *fakeSlugs) ListSlugs(_ context.Context) ([]string, error) {
	return f.slugs, f.err
}

func testPage() *models.DirectoryPage {
	return &models.DirectoryPage{
		Location: models.Location{ID: 1, Slug: "austin", Name: "Austin"},
		Category: models.Category{ID: 1, Slug: "coffee-shop", Name: "Coffee Shop"},
		Items: []models.Listing{
			{ID: 1, Name: "Joe's", Slug: "joes-1", LocationSlug: "austin", CategorySlug: "coffee-shop", Rating: 5},
		},
	}
}

// serve routes the request through a chi router so URL params resolve.
func serve(t *testing.T, register func(r chi.Router), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

var errBackend = errors.New("backend unavailable")
