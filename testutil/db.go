// Package testutil holds shared helpers for integration tests. Helpers skip
// the calling test when TEST_DATABASE_URL is not set, so unit tests run
// without a database.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/db"
)

// NewPool opens a pool against TEST_DATABASE_URL, skipping the test when the
// variable is unset. The pool is closed when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// MigratedPool opens a pool like NewPool and applies the embedded migrations
// first, so integration tests always see the current schema.
func MigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)
	if err := db.RunMigrations(context.Background(), dsn); err != nil {
		t.Fatalf("testutil.MigratedPool: migrate: %v", err)
	}
	return NewPool(t)
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
