package store

import (
	"context"
	"testing"

	"citydex/internal/models"
)

func TestLocationStoreFindBySlug(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	loc, _ := seedPair(t, db)

	s := NewLocationStore(db)

	found, err := s.FindBySlug(ctx, loc.Slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected location, got nil")
	}
	if found.ID != loc.ID || found.Name != "Austin" {
		t.Errorf("got %+v, want id=%d name=Austin", found, loc.ID)
	}
}

func TestLocationStoreFindBySlugAbsent(t *testing.T) {
	db := testDB(t)
	s := NewLocationStore(db)

	found, err := s.FindBySlug(context.Background(), "no-such-location-"+testToken())
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for absent slug, got %+v", found)
	}
}

func TestLocationStoreBulkInsertCapturesIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewLocationStore(db)

	token := testToken()
	state := "TX"
	input := []models.Location{
		{Slug: "test-bulk-a-" + token, Name: "Alpha City", State: &state},
		{Slug: "test-bulk-b-" + token, Name: "Beta City"},
		{Slug: "test-bulk-c-" + token, Name: "Gamma City"},
	}
	t.Cleanup(func() {
		for _, l := range input {
			db.Exec("DELETE FROM locations WHERE slug = $1", l.Slug)
		}
	})

	inserted, err := s.BulkInsert(ctx, input)
	if err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}
	if len(inserted) != 3 {
		t.Fatalf("inserted %d rows, want 3", len(inserted))
	}
	for i, l := range inserted {
		if l.ID == 0 {
			t.Errorf("row %d has no generated ID", i)
		}
		if l.Slug != input[i].Slug {
			t.Errorf("row %d slug = %q, want %q (insert order must be preserved)", i, l.Slug, input[i].Slug)
		}
	}
}

func TestLocationStoreSearch(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewLocationStore(db)

	token := testToken()
	slug := "test-search-" + token
	if _, err := s.BulkInsert(ctx, []models.Location{{Slug: slug, Name: "Zurjkqville " + token}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM locations WHERE slug = $1", slug) })

	// Case-insensitive substring should match.
	found, err := s.Search(ctx, "zurjkq", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 || found[0].Slug != slug {
		t.Errorf("Search = %+v, want single row with slug %q", found, slug)
	}

	// Non-matching term returns nothing.
	none, err := s.Search(ctx, "zzqqxxnosuchcity", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Search returned %d rows, want 0", len(none))
	}
}

func TestLocationDeleteDoesNotCascade(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	loc, cat := seedPair(t, db)

	listing := models.NewListing("Joe's", "test-joes-"+testToken(), "A coffee shop.", &loc, &cat, 5, "")
	if err := NewListingStore(db).BulkInsert(ctx, []models.Listing{listing}); err != nil {
		t.Fatalf("insert listing: %v", err)
	}

	// The listing still references the location, so the delete is rejected
	// and the listing survives.
	if err := NewLocationStore(db).DeleteBySlug(ctx, loc.Slug); err == nil {
		t.Error("expected FK violation deleting a referenced location, got nil")
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM listings WHERE slug = $1", listing.Slug).Scan(&count)
	if count != 1 {
		t.Errorf("listing count after location delete attempt = %d, want 1", count)
	}
}
