package tool

import (
	"database/sql"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/nullable"
)

// Service holds the business rules of the 'tool' feature.
type Service struct {
	store *Store
}

// NewService creates a new Service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// CreateToolRequest is the body of POST /api/tools.
type CreateToolRequest struct {
	ToolName        string  `json:"tool_name"`
	ToolDescription *string `json:"tool_description"`
	WebsiteURL      *string `json:"website_url"`
	SourceURL       *string `json:"source_url"`
}

// UpdateToolRequest is a partial update; absent fields keep their value.
type UpdateToolRequest struct {
	ToolName        *string         `json:"tool_name"`
	ToolDescription nullable.String `json:"tool_description"`
	WebsiteURL      nullable.String `json:"website_url"`
	SourceURL       nullable.String `json:"source_url"`
}

// GetAllTools lists every tool.
func (s *Service) GetAllTools() ([]Tool, error) {
	return s.store.GetAllTools()
}

// GetToolByID returns one tool or a NotFoundError.
func (s *Service) GetToolByID(id string) (*Tool, error) {
	t, err := s.store.GetToolByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("tool", id)
	}
	return t, err
}

// CreateTool validates req and stores a new tool.
func (s *Service) CreateTool(req CreateToolRequest) (*Tool, error) {
	name := strings.TrimSpace(req.ToolName)
	if name == "" {
		return nil, apperr.Validation("tool_name is required")
	}

	t := &Tool{
		ToolName:        name,
		ToolDescription: req.ToolDescription,
		WebsiteURL:      req.WebsiteURL,
		SourceURL:       req.SourceURL,
	}
	if err := s.store.CreateTool(t); err != nil {
		return nil, err
	}
	log.Infof("tool created (ID: %s, name: %s)", t.ID, t.ToolName)
	return t, nil
}

// UpdateTool applies the fields present in req.
func (s *Service) UpdateTool(id string, req UpdateToolRequest) (*Tool, error) {
	// 1. load the current row (also the existence check)
	t, err := s.GetToolByID(id)
	if err != nil {
		return nil, err
	}

	// 2. merge
	if req.ToolName != nil {
		name := strings.TrimSpace(*req.ToolName)
		if name == "" {
			return nil, apperr.Validation("tool_name cannot be empty")
		}
		t.ToolName = name
	}
	if req.ToolDescription.Set {
		t.ToolDescription = req.ToolDescription.Value
	}
	if req.WebsiteURL.Set {
		t.WebsiteURL = req.WebsiteURL.Value
	}
	if req.SourceURL.Set {
		t.SourceURL = req.SourceURL.Value
	}

	if err := s.store.UpdateTool(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTool removes the tool and cascades to its founders and their outreach records.
func (s *Service) DeleteTool(id string) (*CascadeResult, error) {
	result, err := s.store.DeleteTool(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tool", id)
		}
		return nil, apperr.Integrity("failed to delete tool and its dependents", err)
	}
	log.Infof("tool deleted (ID: %s, founders: %d, outreach records: %d)", id, result.Founders, result.Records)
	return result, nil
}
