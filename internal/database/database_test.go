package database_test

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/database"
	"founderreach/internal/database/dbtest"
)

func TestDataSourceName(t *testing.T) {
	tests := []struct {
		name string
		dbi  database.DBI
		want string
	}{
		{
			name: "mysql",
			dbi:  database.DBI{Driver: database.DriverMySQL, User: "u", Password: "p", Endpoint: "db", Port: 3307, Database: "reach"},
			want: "u:p@tcp(db:3307)/reach?parseTime=true&charset=utf8mb4",
		},
		{
			name: "mysql default port",
			dbi:  database.DBI{Driver: database.DriverMySQL, User: "u", Password: "p", Database: "reach"},
			want: "u:p@tcp(localhost:3306)/reach?parseTime=true&charset=utf8mb4",
		},
		{
			name: "postgres",
			dbi:  database.DBI{Driver: database.DriverPostgres, User: "u", Password: "p@ss", Endpoint: "pg", Database: "reach"},
			want: "postgres://u:p%40ss@pg:5432/reach?sslmode=disable",
		},
		{
			name: "sqlite",
			dbi:  database.DBI{Driver: database.DriverSQLite, Path: "data.db"},
			want: "data.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		},
		{
			name: "explicit dsn",
			dbi:  database.DBI{Driver: database.DriverPostgres, DSN: "postgres://elsewhere/db"},
			want: "postgres://elsewhere/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dbi.DataSourceName()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := database.DBI{Driver: "oracle"}.DataSourceName()
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"tools", "templates", "founders", "facebook_profiles", "outreach_records", "app_settings"} {
		assert.Equal(t, 0, dbtest.Count(t, db, table), table)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	db := dbtest.Open(t)

	now := database.Now()
	_, err := db.Exec("INSERT INTO founders (id, founder_name, tool_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), "Ada", uuid.NewString(), now, now)
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))

	assert.True(t, database.IsForeignKeyViolation(&mysql.MySQLError{Number: database.ErrMySQLNoReferencedRow}))
	assert.False(t, database.IsForeignKeyViolation(&mysql.MySQLError{Number: 1062}))
	assert.True(t, database.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, database.IsForeignKeyViolation(errors.New("boom")))
	assert.False(t, database.IsForeignKeyViolation(nil))
}
