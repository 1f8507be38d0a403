package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationsDir es el path dentro de MigrationsFS.
const MigrationsDir = "migrations"

func MigrationsFS() fs.FS {
	return embedMigrations
}

// Prepare deja goose apuntando a las migraciones embebidas.
func Prepare() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate aplica todas las migraciones pendientes.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := Prepare(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
