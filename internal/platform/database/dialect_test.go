package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-manager-api/internal/platform/database"
)

func TestParseDialect(t *testing.T) {
	d, err := database.ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, database.DialectPostgres, d)
	assert.Equal(t, "pgx", d.DriverName())

	d, err = database.ParseDialect("SQLite")
	require.NoError(t, err)
	assert.Equal(t, database.DialectSQLite, d)
	assert.Equal(t, "sqlite", d.DriverName())

	_, err = database.ParseDialect("mysql")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	query := "UPDATE tasks SET title = $1, completed = $2 WHERE id = $3"

	assert.Equal(t, query, database.DialectPostgres.Rebind(query))
	assert.Equal(t,
		"UPDATE tasks SET title = ?, completed = ? WHERE id = ?",
		database.DialectSQLite.Rebind(query))
}
