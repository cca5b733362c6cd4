package pin

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

// Store reads and writes the 'app_settings' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// GetSetting returns the value under key; sql.ErrNoRows when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var setting Setting
	query := s.db.Rebind("SELECT setting_key, setting_value, updated_at FROM app_settings WHERE setting_key = ?")
	if err := s.db.Get(&setting, query, key); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetSetting(%s) DB error: %v", key, err)
		}
		return "", err
	}
	return setting.Value, nil
}

// SetSetting inserts or replaces the value under key.
func (s *Store) SetSetting(key, value string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] SetSetting transaction begin failed: %v", err)
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.Get(&exists, tx.Rebind("SELECT COUNT(*) FROM app_settings WHERE setting_key = ?"), key); err != nil {
		log.Errorf("[ERROR] SetSetting(%s) lookup failed: %v", key, err)
		return err
	}

	query := "INSERT INTO app_settings (setting_value, updated_at, setting_key) VALUES (?, ?, ?)"
	if exists > 0 {
		query = "UPDATE app_settings SET setting_value = ?, updated_at = ? WHERE setting_key = ?"
	}
	if _, err := tx.Exec(tx.Rebind(query), value, database.Now(), key); err != nil {
		log.Errorf("[ERROR] SetSetting(%s) DB error: %v", key, err)
		return err
	}
	return tx.Commit()
}
