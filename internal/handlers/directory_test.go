package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func registerDirectory(h *Directory) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/api/directory/{locationSlug}/{categorySlug}", h.Page)
		r.Post("/admin/cache/invalidate", h.Invalidate)
	}
}

func TestDirectoryPageSuccess(t *testing.T) {
	h := NewDirectory(&fakePages{page: testPage()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/directory/austin/coffee-shop", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp directoryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Location.Slug != "austin" || resp.Category.Slug != "coffee-shop" {
		t.Errorf("slugs = (%q, %q)", resp.Location.Slug, resp.Category.Slug)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Joe's" {
		t.Errorf("items = %+v", resp.Items)
	}
	if !strings.Contains(resp.Meta.Title, "Best Coffee Shop in Austin") {
		t.Errorf("meta title = %q", resp.Meta.Title)
	}
	if resp.Meta.HeroText != "Best Coffee Shop in Austin" {
		t.Errorf("hero text = %q", resp.Meta.HeroText)
	}
}

func TestDirectoryPageNotFound(t *testing.T) {
	h := NewDirectory(&fakePages{page: testPage()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/directory/nowhere/coffee-shop", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestDirectoryPageBackendFailure(t *testing.T) {
	h := NewDirectory(&fakePages{err: errBackend}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/directory/austin/coffee-shop", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

func TestInvalidateSinglePage(t *testing.T) {
	pages := &fakePages{}
	h := NewDirectory(pages, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/cache/invalidate?location=austin&category=coffee-shop", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if len(pages.invalidated) != 1 || pages.invalidated[0] != [2]string{"austin", "coffee-shop"} {
		t.Errorf("invalidated = %v, want [[austin coffee-shop]]", pages.invalidated)
	}
	if len(pages.categoryInvalidated) != 0 {
		t.Errorf("unexpected category invalidation %v", pages.categoryInvalidated)
	}
}

func TestInvalidateCategoryWide(t *testing.T) {
	pages := &fakePages{}
	h := NewDirectory(pages, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/cache/invalidate?category=coffee-shop", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if len(pages.categoryInvalidated) != 1 || pages.categoryInvalidated[0] != "coffee-shop" {
		t.Errorf("categoryInvalidated = %v, want [coffee-shop]", pages.categoryInvalidated)
	}
}

func TestInvalidateRequiresCategory(t *testing.T) {
	h := NewDirectory(&fakePages{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/cache/invalidate?location=austin", nil)
	rr := serve(t, registerDirectory(h), req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
