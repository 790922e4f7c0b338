package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/task-manager-api/internal/platform/database"
	"github.com/phrazzld/task-manager-api/internal/platform/database/migrations"
)

// handleMigrations executes a single migration command.
// It's called from run() when the -migrate flag is set.
func handleMigrations(ctx context.Context, db *sql.DB, dialect database.Dialect, command string) error {
	slog.Info("executing migrations",
		"command", command,
		"dialect", string(dialect))

	return migrations.Run(ctx, db, dialect, command)
}
