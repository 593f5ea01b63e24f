package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/taskvault/taskvault-api/migrations"
)

// runMigrations executes the given goose command ("up", "down", "status")
// against the application's database using the embedded migration files.
func (app *application) runMigrations(command string) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case "up":
		if err := goose.Up(app.db, "."); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		app.logger.Info("migrations applied")
	case "down":
		if err := goose.Down(app.db, "."); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		app.logger.Info("migration rolled back")
	case "status":
		if err := goose.Status(app.db, "."); err != nil {
			return fmt.Errorf("failed to report migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}

	return nil
}
