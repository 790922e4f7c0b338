// Package testdb provides utilities specifically for database testing.
//
// Every test gets a migrated database:
//
//   - OpenSQLite returns a private in-memory SQLite database and needs no
//     external services, so it backs the default test run.
//   - OpenPostgres connects to the server named by DATABASE_URL (or
//     TASKAPI_TEST_DB_URL) and skips the test when neither is set.
//
// Postgres tests should isolate themselves with WithTx, which rolls back
// everything the test wrote.
package testdb
