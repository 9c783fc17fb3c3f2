// Package postgres contains the pgx-backed repository implementations.
// No business logic lives here, only SQL and type mapping.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and
// pgx.Tx. Integration tests pass a transaction that is rolled back after each
// test, giving per-test isolation without cleanup SQL.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type Repositories struct {
	Users repo.Users
	Trips repo.Trips
}

func NewRepositories(db db) Repositories {
	return Repositories{
		Users: &usersRepo{db},
		Trips: &tripsRepo{db},
	}
}

// NewUsers and NewTrips are for callers (and tests) that need one repo only.
func NewUsers(db db) repo.Users { return &usersRepo{db} }
func NewTrips(db db) repo.Trips { return &tripsRepo{db} }
