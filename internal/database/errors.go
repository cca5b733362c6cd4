package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MySQL error numbers
const (
	ErrMySQLRowIsReferenced = 1451 // parent row still referenced
	ErrMySQLNoReferencedRow = 1452 // child row points nowhere
)

// Postgres SQLSTATE
const pqForeignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err is a foreign key failure from any supported driver.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == ErrMySQLRowIsReferenced || mysqlErr.Number == ErrMySQLNoReferencedRow
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqForeignKeyViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// (primary code is in the low byte when extended codes are on)
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "FOREIGN KEY")
	}

	return false
}
