package profile

import (
	"database/sql"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/database"
	"founderreach/internal/nullable"
	"founderreach/internal/template"
)

// Service holds the business rules of the 'profile' feature.
type Service struct {
	store     *Store
	templates *template.Store
}

// NewService creates a new Service.
func NewService(store *Store, templates *template.Store) *Service {
	return &Service{store: store, templates: templates}
}

// CreateProfileRequest is the body of POST /api/profiles.
type CreateProfileRequest struct {
	ProfileName string  `json:"profile_name"`
	TemplateID  *string `json:"template_id"`
}

// UpdateProfileRequest is a partial update; "template_id": null clears the default template.
type UpdateProfileRequest struct {
	ProfileName *string         `json:"profile_name"`
	TemplateID  nullable.String `json:"template_id"`
}

// GetAllProfiles lists every facebook profile.
func (s *Service) GetAllProfiles() ([]Profile, error) {
	return s.store.GetAllProfiles()
}

// GetProfileByID returns one profile or a NotFoundError.
func (s *Service) GetProfileByID(id string) (*Profile, error) {
	p, err := s.store.GetProfileByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("facebook profile", id)
	}
	return p, err
}

// CreateProfile validates and stores a profile.
func (s *Service) CreateProfile(req CreateProfileRequest) (*Profile, error) {
	name := strings.TrimSpace(req.ProfileName)
	if name == "" {
		return nil, apperr.Validation("profile_name is required")
	}
	templateID, err := s.checkTemplate(req.TemplateID)
	if err != nil {
		return nil, err
	}

	p := &Profile{ProfileName: name, TemplateID: templateID}
	if err := s.store.CreateProfile(p); err != nil {
		return nil, translateWriteError(err)
	}
	log.Infof("facebook profile created (ID: %s, name: %s)", p.ID, p.ProfileName)
	return p, nil
}

// UpdateProfile applies the fields present in req.
func (s *Service) UpdateProfile(id string, req UpdateProfileRequest) (*Profile, error) {
	p, err := s.GetProfileByID(id)
	if err != nil {
		return nil, err
	}

	if req.ProfileName != nil {
		name := strings.TrimSpace(*req.ProfileName)
		if name == "" {
			return nil, apperr.Validation("profile_name cannot be empty")
		}
		p.ProfileName = name
	}
	if req.TemplateID.Set {
		templateID, err := s.checkTemplate(req.TemplateID.Value)
		if err != nil {
			return nil, err
		}
		p.TemplateID = templateID
	}

	if err := s.store.UpdateProfile(p); err != nil {
		return nil, translateWriteError(err)
	}
	return p, nil
}

// DeleteProfile removes the profile and its outreach records.
func (s *Service) DeleteProfile(id string) (int64, error) {
	records, err := s.store.DeleteProfile(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.NotFound("facebook profile", id)
		}
		return 0, apperr.Integrity("failed to delete facebook profile and its outreach records", err)
	}
	log.Infof("facebook profile deleted (ID: %s, outreach records: %d)", id, records)
	return records, nil
}

func (s *Service) checkTemplate(id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	templateID := strings.TrimSpace(*id)
	if _, err := s.templates.GetTemplateByID(templateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("template", templateID)
		}
		return nil, err
	}
	return &templateID, nil
}

func translateWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return apperr.Conflict("linked template no longer exists", err)
	}
	return err
}
