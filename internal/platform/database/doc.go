// Package database provides the SQL implementation of the storage interfaces
// defined in the internal/store package. It handles opening connection pools,
// dialect differences between PostgreSQL and SQLite, query execution, and
// mapping between rows and domain entities.
package database
