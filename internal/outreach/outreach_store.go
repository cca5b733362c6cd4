package outreach

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/database"
)

const recordColumns = "id, founder_id, tool_id, fb_profile_id, template_id, generated_message, note, status, created_at, updated_at"

// Store handles the 'outreach_records' table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// ListRecords returns the records matching f, most recently updated first.
func (s *Store) ListRecords(f Filter) ([]Record, error) {
	var (
		where []string
		args  []any
	)
	if f.ToolID != "" {
		where = append(where, "tool_id = ?")
		args = append(args, f.ToolID)
	}
	if f.FounderID != "" {
		where = append(where, "founder_id = ?")
		args = append(args, f.FounderID)
	}
	if f.ProfileID != "" {
		where = append(where, "fb_profile_id = ?")
		args = append(args, f.ProfileID)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}

	query := "SELECT " + recordColumns + " FROM outreach_records"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY updated_at DESC, id ASC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	records := []Record{}
	if err := s.db.Select(&records, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] ListRecords DB error: %v", err)
		return nil, err
	}
	return records, nil
}

// GetRecordByID returns one record; sql.ErrNoRows when it does not exist.
func (s *Store) GetRecordByID(id string) (*Record, error) {
	var r Record
	query := s.db.Rebind("SELECT " + recordColumns + " FROM outreach_records WHERE id = ?")
	if err := s.db.Get(&r, query, id); err != nil {
		if err != sql.ErrNoRows {
			log.Errorf("[ERROR] GetRecordByID(ID: %s) DB error: %v", id, err)
		}
		return nil, err
	}
	return &r, nil
}

// CountByStatus counts the records whose status is one of statuses.
func (s *Store) CountByStatus(statuses []Status) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	values := make([]string, len(statuses))
	for i, st := range statuses {
		values[i] = string(st)
	}

	query, args, err := sqlx.In("SELECT COUNT(*) FROM outreach_records WHERE status IN (?)", values)
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.db.Get(&count, s.db.Rebind(query), args...); err != nil {
		log.Errorf("[ERROR] CountByStatus DB error: %v", err)
		return 0, err
	}
	return count, nil
}

// CreateRecord inserts r, assigning its id and timestamps.
func (s *Store) CreateRecord(r *Record) error {
	r.ID = uuid.NewString()
	r.CreatedAt = database.Now()
	r.UpdatedAt = r.CreatedAt

	query := `
		INSERT INTO outreach_records
			(id, founder_id, tool_id, fb_profile_id, template_id, generated_message, note, status, created_at, updated_at)
		VALUES
			(:id, :founder_id, :tool_id, :fb_profile_id, :template_id, :generated_message, :note, :status, :created_at, :updated_at)
	`
	if _, err := s.db.NamedExec(query, r); err != nil {
		log.Errorf("[ERROR] CreateRecord DB error: %v", err)
		return err
	}
	return nil
}

// UpdateRecord writes the status, message and note of r.
func (s *Store) UpdateRecord(r *Record) error {
	r.UpdatedAt = database.Now()

	query := `
		UPDATE outreach_records
		SET
			status = :status,
			generated_message = :generated_message,
			note = :note,
			updated_at = :updated_at
		WHERE
			id = :id
	`
	if _, err := s.db.NamedExec(query, r); err != nil {
		log.Errorf("[ERROR] UpdateRecord DB error: %v", err)
		return err
	}
	return nil
}

// DeleteRecord removes one record; sql.ErrNoRows when it does not exist.
func (s *Store) DeleteRecord(id string) error {
	res, err := s.db.Exec(s.db.Rebind("DELETE FROM outreach_records WHERE id = ?"), id)
	if err != nil {
		log.Errorf("[ERROR] DeleteRecord DB error: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
