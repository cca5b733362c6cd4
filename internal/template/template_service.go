package template

import (
	"database/sql"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// Service holds the business rules of the 'template' feature.
type Service struct {
	store *Store
}

// NewService creates a new Service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// CreateTemplateRequest is the body of POST /api/templates.
type CreateTemplateRequest struct {
	TemplateName    string `json:"template_name"`
	TemplateContent string `json:"template_content"`
}

// UpdateTemplateRequest is a partial update.
type UpdateTemplateRequest struct {
	TemplateName    *string `json:"template_name"`
	TemplateContent *string `json:"template_content"`
}

// GetAllTemplates lists every template.
func (s *Service) GetAllTemplates() ([]Template, error) {
	return s.store.GetAllTemplates()
}

// GetTemplateByID returns one template or a NotFoundError.
func (s *Service) GetTemplateByID(id string) (*Template, error) {
	tmpl, err := s.store.GetTemplateByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("template", id)
	}
	return tmpl, err
}

// CreateTemplate validates and stores a template.
func (s *Service) CreateTemplate(req CreateTemplateRequest) (*Template, error) {
	name := strings.TrimSpace(req.TemplateName)
	if name == "" {
		return nil, apperr.Validation("template_name is required")
	}
	if strings.TrimSpace(req.TemplateContent) == "" {
		return nil, apperr.Validation("template_content is required")
	}

	tmpl := &Template{
		TemplateName:    name,
		TemplateContent: req.TemplateContent,
	}
	if err := s.store.CreateTemplate(tmpl); err != nil {
		return nil, err
	}
	log.Infof("template created (ID: %s, name: %s)", tmpl.ID, tmpl.TemplateName)
	return tmpl, nil
}

// UpdateTemplate applies the fields present in req.
func (s *Service) UpdateTemplate(id string, req UpdateTemplateRequest) (*Template, error) {
	tmpl, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}

	if req.TemplateName != nil {
		name := strings.TrimSpace(*req.TemplateName)
		if name == "" {
			return nil, apperr.Validation("template_name cannot be empty")
		}
		tmpl.TemplateName = name
	}
	if req.TemplateContent != nil {
		if strings.TrimSpace(*req.TemplateContent) == "" {
			return nil, apperr.Validation("template_content cannot be empty")
		}
		tmpl.TemplateContent = *req.TemplateContent
	}

	if err := s.store.UpdateTemplate(tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// DeleteTemplate deletes a template; profiles using it lose their default template.
func (s *Service) DeleteTemplate(id string) error {
	cleared, err := s.store.DeleteTemplate(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("template", id)
		}
		return apperr.Integrity("failed to delete template", err)
	}
	log.Infof("template deleted (ID: %s, profiles unlinked: %d)", id, cleared)
	return nil
}
