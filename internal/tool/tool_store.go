package tool

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

const toolColumns = "id, tool_name, tool_description, website_url, source_url, created_at, updated_at"

// Store handles the 'tools' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CountTools returns the number of tools.
func (s *Store) CountTools() (int, error) {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM tools"); err != nil {
		log.Errorf("[ERROR] CountTools DB error: %v", err)
		return 0, err
	}
	return count, nil
}

// GetAllTools returns every tool, newest first.
func (s *Store) GetAllTools() ([]Tool, error) {
	tools := []Tool{}
	query := "SELECT " + toolColumns + " FROM tools ORDER BY created_at DESC, id ASC"
	if err := s.db.Select(&tools, query); err != nil {
		log.Errorf("[ERROR] GetAllTools DB error: %v", err)
		return nil, err
	}
	return tools, nil
}

// GetToolByID returns one tool; sql.ErrNoRows when it does not exist.
func (s *Store) GetToolByID(id string) (*Tool, error) {
	var t Tool
	query := s.db.Rebind("SELECT " + toolColumns + " FROM tools WHERE id = ?")
	if err := s.db.Get(&t, query, id); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetToolByID(ID: %s) DB error: %v", id, err)
		}
		return nil, err // (ErrNoRows included)
	}
	return &t, nil
}

// GetToolsByIDs returns the tools found for ids, keyed by id.
func (s *Store) GetToolsByIDs(ids []string) (map[string]Tool, error) {
	found := make(map[string]Tool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := sqlx.In("SELECT "+toolColumns+" FROM tools WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var tools []Tool
	if err := s.db.Select(&tools, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] GetToolsByIDs DB error: %v", err)
		return nil, err
	}
	for _, t := range tools {
		found[t.ID] = t
	}
	return found, nil
}

// CreateTool inserts t, assigning its id and timestamps.
func (s *Store) CreateTool(t *Tool) error {
	if err := InsertTool(s.db, t); err != nil {
		log.Errorf("[ERROR] CreateTool DB error: %v", err)
		return err
	}
	return nil
}

// InsertTool inserts t through e, which may be a transaction.
func InsertTool(e sqlx.Ext, t *Tool) error {
	t.ID = uuid.NewString()
	t.CreatedAt = database.Now()
	t.UpdatedAt = t.CreatedAt

	query := `
		INSERT INTO tools (id, tool_name, tool_description, website_url, source_url, created_at, updated_at)
		VALUES (:id, :tool_name, :tool_description, :website_url, :source_url, :created_at, :updated_at)
	`
	_, err := sqlx.NamedExec(e, query, t)
	return err
}

// UpdateTool writes every editable column of t.
func (s *Store) UpdateTool(t *Tool) error {
	t.UpdatedAt = database.Now()

	query := `
		UPDATE tools
		SET
			tool_name = :tool_name,
			tool_description = :tool_description,
			website_url = :website_url,
			source_url = :source_url,
			updated_at = :updated_at
		WHERE
			id = :id
	`
	if _, err := s.db.NamedExec(query, t); err != nil {
		log.Errorf("[ERROR] UpdateTool DB error: %v", err)
		return err
	}
	return nil
}

// DeleteTool removes a tool with its founders and every outreach record
// pointing at either, in one transaction.
func (s *Store) DeleteTool(id string) (*CascadeResult, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] DeleteTool transaction begin failed: %v", err)
		return nil, err
	}
	defer tx.Rollback() // (rollback unless committed)

	var result CascadeResult

	// 1. outreach records of the tool or of its founders
	res, err := tx.Exec(tx.Rebind(`
		DELETE FROM outreach_records
		WHERE tool_id = ?
		   OR founder_id IN (SELECT id FROM founders WHERE tool_id = ?)`), id, id)
	if err != nil {
		log.Errorf("[ERROR] DeleteTool (outreach records) failed: %v", err)
		return nil, err
	}
	result.Records, _ = res.RowsAffected()

	// 2. founders
	res, err = tx.Exec(tx.Rebind("DELETE FROM founders WHERE tool_id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteTool (founders) failed: %v", err)
		return nil, err
	}
	result.Founders, _ = res.RowsAffected()

	// 3. the tool itself
	res, err = tx.Exec(tx.Rebind("DELETE FROM tools WHERE id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteTool (tool) failed: %v", err)
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("[ERROR] DeleteTool commit failed: %v", err)
		return nil, err
	}
	return &result, nil
}
