// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"citydex/internal/database"
	"citydex/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "citydex")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "citydex")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testToken returns a short unique suffix for test slugs.
func testToken() string {
	return uuid.NewString()[:8]
}

// seedPair inserts one location and one category with unique slugs and
// registers cleanup. Listings referencing the category are removed by the
// cascade; the location delete runs after.
func seedPair(t *testing.T, db *sql.DB) (models.Location, models.Category) {
	t.Helper()
	ctx := context.Background()
	token := testToken()

	locs, err := NewLocationStore(db).BulkInsert(ctx, []models.Location{
		{Slug: "test-austin-" + token, Name: "Austin"},
	})
	if err != nil {
		t.Fatalf("insert test location: %v", err)
	}
	cats, err := NewCategoryStore(db).BulkInsert(ctx, []models.Category{
		{Slug: "test-coffee-" + token, Name: "Coffee Shop"},
	})
	if err != nil {
		t.Fatalf("insert test category: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE slug = $1", cats[0].Slug)
		db.Exec("DELETE FROM locations WHERE slug = $1", locs[0].Slug)
	})

	return locs[0], cats[0]
}
