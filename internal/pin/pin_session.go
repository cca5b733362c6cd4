package pin

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

const sessionCookie = "founderreach_session"

// NewSessionStore keeps sessions in MySQL when the app runs on MySQL and in memory otherwise.
func NewSessionStore(db *sqlx.DB, driver string, expiration time.Duration) *session.Store {
	cfg := session.Config{
		Expiration:     expiration,
		CookieName:     sessionCookie,
		CookieSecure:   false,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}

	if driver == database.DriverMySQL && db != nil {
		cfg.Storage = mysql.New(mysql.Config{
			Db:    db.DB,
			Table: "fiber_sessions",
		})
		log.Info("MySQL session store configured.")
	} else {
		log.Info("in-memory session store configured.")
	}
	return session.New(cfg)
}
