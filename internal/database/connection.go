package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Supported driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// (sqlx does not know the modernc driver name; it uses '?' like sqlite3)
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// DBI describes how to reach the repository database.
type DBI struct {
	Driver   string
	User     string
	Password string
	Endpoint string
	Port     int
	Database string
	Path     string // sqlite file (":memory:" for tests)
	DSN      string // full DSN, overrides the fields above when set
}

// DataSourceName returns the DSN for the configured driver.
func (i DBI) DataSourceName() (string, error) {
	if i.DSN != "" {
		return i.DSN, nil
	}

	if i.Endpoint == "" {
		i.Endpoint = "localhost"
	}

	switch i.Driver {
	case DriverMySQL:
		if i.Port == 0 {
			i.Port = 3306
		}
		// parseTime=true so DATETIME/TIMESTAMP scan into time.Time
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
			i.User, i.Password, i.Endpoint, i.Port, i.Database), nil
	case DriverPostgres:
		if i.Port == 0 {
			i.Port = 5432
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			url.QueryEscape(i.User), url.QueryEscape(i.Password), i.Endpoint, i.Port, i.Database), nil
	case DriverSQLite:
		path := i.Path
		if path == "" {
			path = "founderreach.db"
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", i.Driver)
	}
}

// CreateConnection opens and pings the repository database.
func CreateConnection(i DBI) (*sqlx.DB, error) {
	dsn, err := i.DataSourceName()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(i.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", i.Driver, err)
	}

	if i.Driver == DriverSQLite {
		// One writer; also keeps a ":memory:" database alive across calls.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// Now is the timestamp written to created_at/updated_at columns.
// (second precision so every driver round-trips the same value)
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
