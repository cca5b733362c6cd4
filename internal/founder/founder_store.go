package founder

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
	"founderreach/internal/tool"
)

const founderColumns = "id, founder_name, social_profile_url, tool_id, created_at, updated_at"

// Store handles the 'founders' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CountFounders returns the number of founders.
func (s *Store) CountFounders() (int, error) {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM founders"); err != nil {
		log.Errorf("[ERROR] CountFounders DB error: %v", err)
		return 0, err
	}
	return count, nil
}

// GetAllFounders returns founders newest first, limited to toolID when it is not empty.
func (s *Store) GetAllFounders(toolID string) ([]Founder, error) {
	founders := []Founder{}

	query := "SELECT " + founderColumns + " FROM founders"
	var args []any
	if toolID != "" {
		query += " WHERE tool_id = ?"
		args = append(args, toolID)
	}
	query += " ORDER BY created_at DESC, id ASC"

	if err := s.db.Select(&founders, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] GetAllFounders DB error: %v", err)
		return nil, err
	}
	return founders, nil
}

// GetFounderByID returns one founder; sql.ErrNoRows when it does not exist.
func (s *Store) GetFounderByID(id string) (*Founder, error) {
	var f Founder
	query := s.db.Rebind("SELECT " + founderColumns + " FROM founders WHERE id = ?")
	if err := s.db.Get(&f, query, id); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetFounderByID(ID: %s) DB error: %v", id, err)
		}
		return nil, err
	}
	return &f, nil
}

// GetFoundersByIDs returns the founders found for ids, keyed by id.
func (s *Store) GetFoundersByIDs(ids []string) (map[string]Founder, error) {
	found := make(map[string]Founder, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := sqlx.In("SELECT "+founderColumns+" FROM founders WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var founders []Founder
	if err := s.db.Select(&founders, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] GetFoundersByIDs DB error: %v", err)
		return nil, err
	}
	for _, f := range founders {
		found[f.ID] = f
	}
	return found, nil
}

const insertFounderQuery = `
	INSERT INTO founders (id, founder_name, social_profile_url, tool_id, created_at, updated_at)
	VALUES (:id, :founder_name, :social_profile_url, :tool_id, :created_at, :updated_at)
`

func insertFounder(e sqlx.Ext, f *Founder) error {
	f.ID = uuid.NewString()
	f.CreatedAt = database.Now()
	f.UpdatedAt = f.CreatedAt

	_, err := sqlx.NamedExec(e, insertFounderQuery, f)
	return err
}

// CreateFounder inserts f, assigning its id and timestamps.
func (s *Store) CreateFounder(f *Founder) error {
	if err := insertFounder(s.db, f); err != nil {
		log.Errorf("[ERROR] CreateFounder DB error: %v", err)
		return err
	}
	return nil
}

// CreateToolWithFounder inserts t and f, with f linked to t, in one transaction.
func (s *Store) CreateToolWithFounder(t *tool.Tool, f *Founder) error {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] CreateToolWithFounder transaction begin failed: %v", err)
		return err
	}
	defer tx.Rollback()

	if err := tool.InsertTool(tx, t); err != nil {
		log.Errorf("[ERROR] CreateToolWithFounder (tool) failed: %v", err)
		return err
	}

	f.ToolID = &t.ID
	if err := insertFounder(tx, f); err != nil {
		log.Errorf("[ERROR] CreateToolWithFounder (founder) failed: %v", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("[ERROR] CreateToolWithFounder commit failed: %v", err)
		return err
	}
	return nil
}

// UpdateFounder writes every editable column of f.
func (s *Store) UpdateFounder(f *Founder) error {
	f.UpdatedAt = database.Now()

	query := `
		UPDATE founders
		SET
			founder_name = :founder_name,
			social_profile_url = :social_profile_url,
			tool_id = :tool_id,
			updated_at = :updated_at
		WHERE
			id = :id
	`
	if _, err := s.db.NamedExec(query, f); err != nil {
		log.Errorf("[ERROR] UpdateFounder DB error: %v", err)
		return err
	}
	return nil
}

// DeleteFounder removes a founder and its outreach records in one transaction.
// It returns the number of records removed.
func (s *Store) DeleteFounder(id string) (int64, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Errorf("[ERROR] DeleteFounder transaction begin failed: %v", err)
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(tx.Rebind("DELETE FROM outreach_records WHERE founder_id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteFounder (outreach records) failed: %v", err)
		return 0, err
	}
	records, _ := res.RowsAffected()

	res, err = tx.Exec(tx.Rebind("DELETE FROM founders WHERE id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteFounder (founder) failed: %v", err)
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("[ERROR] DeleteFounder commit failed: %v", err)
		return 0, err
	}
	return records, nil
}
