package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/KefouegFrank/zenithis-test-technique-backend/migrations"
)

// RunMigrations applies all pending goose migrations from the embedded FS.
// goose drives database/sql, so a short-lived stdlib connection is opened
// alongside the pgx pool used for queries.
func RunMigrations(ctx context.Context, url string) error {
	sqldb, err := sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("db.RunMigrations: open: %w", err)
	}
	defer sqldb.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("db.RunMigrations: dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqldb, "."); err != nil {
		return fmt.Errorf("db.RunMigrations: up: %w", err)
	}
	return nil
}
