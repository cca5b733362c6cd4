package profile

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

const profileColumns = "id, profile_name, template_id, created_at, updated_at"

// Store handles the 'facebook_profiles' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// GetAllProfiles returns every profile, newest first.
func (s *Store) GetAllProfiles() ([]Profile, error) {
	profiles := []Profile{}
	query := "SELECT " + profileColumns + " FROM facebook_profiles ORDER BY created_at DESC, id ASC"
	if err := s.db.Select(&profiles, query); err != nil {
		log.Errorf("[ERROR] GetAllProfiles DB error: %v", err)
		return nil, err
	}
	return profiles, nil
}

// GetProfileByID returns one profile; sql.ErrNoRows when it does not exist.
func (s *Store) GetProfileByID(id string) (*Profile, error) {
	var p Profile
	query := s.db.Rebind("SELECT " + profileColumns + " FROM facebook_profiles WHERE id = ?")
	if err := s.db.Get(&p, query, id); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetProfileByID(ID: %s) DB error: %v", id, err)
		}
		return nil, err
	}
	return &p, nil
}

// GetProfilesByIDs returns the profiles found for ids, keyed by id.
func (s *Store) GetProfilesByIDs(ids []string) (map[string]Profile, error) {
	found := make(map[string]Profile, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := sqlx.In("SELECT "+profileColumns+" FROM facebook_profiles WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var profiles []Profile
	if err := s.db.Select(&profiles, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] GetProfilesByIDs DB error: %v", err)
		return nil, err
	}
	for _, p := range profiles {
		found[p.ID] = p
	}
	return found, nil
}

// CreateProfile inserts p, assigning its id and timestamps.
func (s *Store) CreateProfile(p *Profile) error {
	p.ID = uuid.NewString()
	p.CreatedAt = database.Now()
	p.UpdatedAt = p.CreatedAt

	query := `
		INSERT INTO facebook_profiles (id, profile_name, template_id, created_at, updated_at)
		VALUES (:id, :profile_name, :template_id, :created_at, :updated_at)
	`
	if _, err := s.db.NamedExec(query, p); err != nil {
		log.Errorf("[ERROR] CreateProfile DB error: %v", err)
		return err
	}
	return nil
}

// UpdateProfile writes the name and default template of p.
func (s *Store) UpdateProfile(p *Profile) error {
	p.UpdatedAt = database.Now()

	query := `
		UPDATE facebook_profiles
		SET
			profile_name = :profile_name,
			template_id = :template_id,
			updated_at = :updated_at
		WHERE
			id = :id
	`
	if _, err := s.db.NamedExec(query, p); err != nil {
		log.Errorf("[ERROR] UpdateProfile DB error: %v", err)
		return err
	}
	return nil
}

// DeleteProfile removes a profile and the outreach records sent from it.
func (s *Store) DeleteProfile(id string) (int64, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] DeleteProfile transaction begin failed: %v", err)
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(tx.Rebind("DELETE FROM outreach_records WHERE fb_profile_id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteProfile (outreach records) failed: %v", err)
		return 0, err
	}
	records, _ := res.RowsAffected()

	res, err = tx.Exec(tx.Rebind("DELETE FROM facebook_profiles WHERE id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteProfile (profile) failed: %v", err)
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("[ERROR] DeleteProfile commit failed: %v", err)
		return 0, err
	}
	return records, nil
}
