// Package dbtest opens throwaway databases for package tests.
package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"founderreach/internal/database"
)

// Open returns a migrated in-memory SQLite database closed at test cleanup.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.CreateConnection(database.DBI{
		Driver: database.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

// FailDeletes installs a trigger that aborts every DELETE on table, so a
// transaction can be made to fail after its earlier statements ran.
func FailDeletes(t *testing.T, db *sqlx.DB, table string) {
	t.Helper()

	_, err := db.Exec(`CREATE TRIGGER fail_delete_` + table + ` BEFORE DELETE ON ` + table + `
		BEGIN SELECT RAISE(ABORT, 'delete blocked'); END`)
	require.NoError(t, err)
}
