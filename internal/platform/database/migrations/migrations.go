// Package migrations embeds the goose SQL migrations for every supported
// dialect and applies them to a database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/phrazzld/task-manager-api/internal/platform/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Commands accepted by Run.
var Commands = []string{"up", "up-by-one", "down", "redo", "reset", "status", "version"}

// goose keeps its dialect, filesystem and logger in package globals.
var mu sync.Mutex

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB, dialect database.Dialect) error {
	return Run(ctx, db, dialect, "up")
}

// Run executes a goose command against db using the migrations for dialect.
func Run(ctx context.Context, db *sql.DB, dialect database.Dialect, command string, args ...string) error {
	if !slices.Contains(Commands, command) {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	dir, gooseDialect, err := sourceFor(dialect)
	if err != nil {
		return err
	}

	log := slog.Default().With(
		"correlation_id", uuid.NewString(),
		"component", "migrations",
		"command", command,
		"dialect", string(dialect),
	)

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedded)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	start := time.Now()
	log.Info("starting migration operation")

	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		log.Error("migration operation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migration operation completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func sourceFor(dialect database.Dialect) (dir string, gooseDialect string, err error) {
	switch dialect {
	case database.DialectPostgres:
		return "postgres", "postgres", nil
	case database.DialectSQLite:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// It does not exit; the error is returned to the caller instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
