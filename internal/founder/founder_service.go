package founder

import (
	"database/sql"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/database"
	"founderreach/internal/nullable"
	"founderreach/internal/tool"
)

// Service holds the business rules of the 'founder' feature.
type Service struct {
	store *Store
	tools *tool.Store
}

// NewService creates a new Service.
func NewService(store *Store, tools *tool.Store) *Service {
	return &Service{store: store, tools: tools}
}

// CreateFounderRequest is the body of POST /api/founders.
type CreateFounderRequest struct {
	FounderName      string  `json:"founder_name"`
	SocialProfileURL *string `json:"social_profile_url"`
	ToolID           *string `json:"tool_id"`
}

// UpdateFounderRequest is a partial update; "tool_id": null unlinks the tool.
type UpdateFounderRequest struct {
	FounderName      *string         `json:"founder_name"`
	SocialProfileURL nullable.String `json:"social_profile_url"`
	ToolID           nullable.String `json:"tool_id"`
}

// CreateToolFounderRequest is the body of POST /api/tool-founder.
type CreateToolFounderRequest struct {
	ToolName         string  `json:"tool_name"`
	ToolDescription  *string `json:"tool_description"`
	WebsiteURL       *string `json:"website_url"`
	SourceURL        *string `json:"source_url"`
	FounderName      string  `json:"founder_name"`
	SocialProfileURL *string `json:"social_profile_url"`
}

// GetAllFounders lists founders, optionally only those linked to toolID.
func (s *Service) GetAllFounders(toolID string) ([]Founder, error) {
	founders, err := s.store.GetAllFounders(toolID)
	if err != nil {
		return nil, err
	}
	if err := s.attachTools(founders); err != nil {
		return nil, err
	}
	return founders, nil
}

// GetFounderByID returns one founder with its tool, or a NotFoundError.
func (s *Service) GetFounderByID(id string) (*Founder, error) {
	f, err := s.store.GetFounderByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("founder", id)
	}
	if err != nil {
		return nil, err
	}

	one := []Founder{*f}
	if err := s.attachTools(one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// CreateFounder validates req and stores a new founder.
func (s *Service) CreateFounder(req CreateFounderRequest) (*Founder, error) {
	name := strings.TrimSpace(req.FounderName)
	if name == "" {
		return nil, apperr.Validation("founder_name is required")
	}

	toolID, err := s.checkTool(req.ToolID)
	if err != nil {
		return nil, err
	}

	f := &Founder{
		FounderName:      name,
		SocialProfileURL: req.SocialProfileURL,
		ToolID:           toolID,
	}
	if err := s.store.CreateFounder(f); err != nil {
		return nil, translateWriteError(err)
	}
	log.Infof("founder created (ID: %s, name: %s)", f.ID, f.FounderName)
	return s.GetFounderByID(f.ID)
}

// CreateToolWithFounder creates a tool and a founder linked to it atomically.
func (s *Service) CreateToolWithFounder(req CreateToolFounderRequest) (*ToolFounder, error) {
	toolName := strings.TrimSpace(req.ToolName)
	if toolName == "" {
		return nil, apperr.Validation("tool_name is required")
	}
	founderName := strings.TrimSpace(req.FounderName)
	if founderName == "" {
		return nil, apperr.Validation("founder_name is required")
	}

	t := &tool.Tool{
		ToolName:        toolName,
		ToolDescription: req.ToolDescription,
		WebsiteURL:      req.WebsiteURL,
		SourceURL:       req.SourceURL,
	}
	f := &Founder{
		FounderName:      founderName,
		SocialProfileURL: req.SocialProfileURL,
	}
	if err := s.store.CreateToolWithFounder(t, f); err != nil {
		return nil, err
	}
	f.Tool = t

	log.Infof("tool and founder created (tool ID: %s, founder ID: %s)", t.ID, f.ID)
	return &ToolFounder{Tool: t, Founder: f}, nil
}

// UpdateFounder applies the fields present in req.
func (s *Service) UpdateFounder(id string, req UpdateFounderRequest) (*Founder, error) {
	f, err := s.store.GetFounderByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("founder", id)
	}
	if err != nil {
		return nil, err
	}

	if req.FounderName != nil {
		name := strings.TrimSpace(*req.FounderName)
		if name == "" {
			return nil, apperr.Validation("founder_name cannot be empty")
		}
		f.FounderName = name
	}
	if req.SocialProfileURL.Set {
		f.SocialProfileURL = req.SocialProfileURL.Value
	}
	if req.ToolID.Set {
		toolID, err := s.checkTool(req.ToolID.Value)
		if err != nil {
			return nil, err
		}
		f.ToolID = toolID
	}

	if err := s.store.UpdateFounder(f); err != nil {
		return nil, translateWriteError(err)
	}
	return s.GetFounderByID(id)
}

// DeleteFounder removes the founder and its outreach records.
func (s *Service) DeleteFounder(id string) (int64, error) {
	records, err := s.store.DeleteFounder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.NotFound("founder", id)
		}
		return 0, apperr.Integrity("failed to delete founder and its outreach records", err)
	}
	log.Infof("founder deleted (ID: %s, outreach records: %d)", id, records)
	return records, nil
}

// checkTool normalizes an optional tool id; an empty string counts as unset.
func (s *Service) checkTool(id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	toolID := strings.TrimSpace(*id)
	if _, err := s.tools.GetToolByID(toolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tool", toolID)
		}
		return nil, err
	}
	return &toolID, nil
}

func (s *Service) attachTools(founders []Founder) error {
	var ids []string
	for _, f := range founders {
		if f.ToolID != nil {
			ids = append(ids, *f.ToolID)
		}
	}
	tools, err := s.tools.GetToolsByIDs(ids)
	if err != nil {
		return err
	}
	for i := range founders {
		if founders[i].ToolID == nil {
			continue
		}
		if t, ok := tools[*founders[i].ToolID]; ok {
			founders[i].Tool = &t
		}
	}
	return nil
}

// translateWriteError turns a lost race with a tool delete into a conflict.
func translateWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return apperr.Conflict("linked tool no longer exists", err)
	}
	return err
}
