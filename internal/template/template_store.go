package template

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

const templateColumns = "id, template_name, template_content, created_at, updated_at"

// Store handles the 'templates' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CountTemplates returns the number of templates.
func (s *Store) CountTemplates() (int, error) {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM templates"); err != nil {
		log.Errorf("[ERROR] CountTemplates DB error: %v", err)
		return 0, err
	}
	return count, nil
}

// GetAllTemplates returns every template, newest first.
func (s *Store) GetAllTemplates() ([]Template, error) {
	templates := []Template{}
	query := "SELECT " + templateColumns + " FROM templates ORDER BY created_at DESC, id ASC"
	if err := s.db.Select(&templates, query); err != nil {
		log.Errorf("[ERROR] GetAllTemplates DB error: %v", err)
		return nil, err
	}
	return templates, nil
}

// GetTemplateByID returns one template with its content.
func (s *Store) GetTemplateByID(id string) (*Template, error) {
	var tmpl Template
	query := s.db.Rebind("SELECT " + templateColumns + " FROM templates WHERE id = ?")
	if err := s.db.Get(&tmpl, query, id); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetTemplateByID(ID: %s) DB error: %v", id, err)
		}
		return nil, err // (ErrNoRows included)
	}
	return &tmpl, nil
}

// GetTemplatesByIDs returns the templates found for ids, keyed by id.
func (s *Store) GetTemplatesByIDs(ids []string) (map[string]Template, error) {
	found := make(map[string]Template, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := sqlx.In("SELECT "+templateColumns+" FROM templates WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var templates []Template
	if err := s.db.Select(&templates, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] GetTemplatesByIDs DB error: %v", err)
		return nil, err
	}
	for _, t := range templates {
		found[t.ID] = t
	}
	return found, nil
}

// CreateTemplate inserts tmpl, assigning its id and timestamps.
func (s *Store) CreateTemplate(tmpl *Template) error {
	tmpl.ID = uuid.NewString()
	tmpl.CreatedAt = database.Now()
	tmpl.UpdatedAt = tmpl.CreatedAt

	query := `
		INSERT INTO templates (id, template_name, template_content, created_at, updated_at)
		VALUES (:id, :template_name, :template_content, :created_at, :updated_at)
	`
	if _, err := s.db.NamedExec(query, tmpl); err != nil {
		log.Errorf("[ERROR] CreateTemplate DB error: %v", err)
		return err
	}
	return nil
}

// UpdateTemplate writes the template name and content.
func (s *Store) UpdateTemplate(tmpl *Template) error {
	tmpl.UpdatedAt = database.Now()

	query := `
		UPDATE templates
		SET
			template_name = :template_name,
			template_content = :template_content,
			updated_at = :updated_at
		WHERE
			id = :id
	`
	if _, err := s.db.NamedExec(query, tmpl); err != nil {
		log.Errorf("[ERROR] UpdateTemplate DB error: %v", err)
		return err
	}
	return nil
}

// DeleteTemplate clears every reference to the template, then deletes it.
// Profiles and outreach records are kept.
func (s *Store) DeleteTemplate(id string) (int64, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] DeleteTemplate transaction begin failed: %v", err)
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(tx.Rebind("UPDATE facebook_profiles SET template_id = NULL WHERE template_id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteTemplate (profiles) failed: %v", err)
		return 0, err
	}
	cleared, _ := res.RowsAffected()

	if _, err := tx.Exec(tx.Rebind("UPDATE outreach_records SET template_id = NULL WHERE template_id = ?"), id); err != nil {
		log.Errorf("[ERROR] DeleteTemplate (outreach records) failed: %v", err)
		return 0, err
	}

	res, err = tx.Exec(tx.Rebind("DELETE FROM templates WHERE id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteTemplate DB error: %v", err)
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return cleared, nil
}
