package database

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect identifies the SQL flavour spoken by the underlying database.
type Dialect string

// Supported dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect maps a configured driver name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(strings.ToLower(name)) {
	case DialectPostgres:
		return DialectPostgres, nil
	case DialectSQLite:
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", name)
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	case DialectSQLite:
		return "sqlite"
	default:
		return ""
	}
}

var numberedPlaceholder = regexp.MustCompile(`\$\d+`)

// Rebind rewrites a query written with $n placeholders for the dialect.
// SQLite receives plain ? markers, so each $n must appear once and in order.
func (d Dialect) Rebind(query string) string {
	if d != DialectSQLite {
		return query
	}
	return numberedPlaceholder.ReplaceAllString(query, "?")
}
