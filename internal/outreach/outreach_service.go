package outreach

import (
	"database/sql"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/database"
	"founderreach/internal/founder"
	"founderreach/internal/nullable"
	"founderreach/internal/profile"
	"founderreach/internal/template"
	"founderreach/internal/tool"
)

// Generation failure reasons reported to the Observer.
const (
	ReasonInvalidRequest  = "invalid_request"
	ReasonFounderNotFound = "founder_not_found"
	ReasonNoTool          = "no_tool"
	ReasonProfileNotFound = "profile_not_found"
	ReasonNoTemplate      = "no_template"
	ReasonStoreError      = "store_error"
)

// Observer is notified about message generation outcomes.
type Observer interface {
	MessageGenerated()
	GenerationFailed(reason string)
}

type noopObserver struct{}

func (noopObserver) MessageGenerated()       {}
func (noopObserver) GenerationFailed(string) {}

// Service generates outreach messages and manages outreach records.
type Service struct {
	store     *Store
	founders  *founder.Store
	tools     *tool.Store
	profiles  *profile.Store
	templates *template.Store
	observer  Observer
}

// NewService creates a new Service. observer may be nil.
func NewService(store *Store, founders *founder.Store, tools *tool.Store, profiles *profile.Store, templates *template.Store, observer Observer) *Service {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Service{
		store:     store,
		founders:  founders,
		tools:     tools,
		profiles:  profiles,
		templates: templates,
		observer:  observer,
	}
}

// GenerateRequest is the body of POST /api/outreach/generate.
// profile_id is accepted as an alias of fb_profile_id.
type GenerateRequest struct {
	FounderID   string `json:"founder_id"`
	FBProfileID string `json:"fb_profile_id"`
	ProfileID   string `json:"profile_id"`
}

func (r GenerateRequest) profileID() string {
	if id := strings.TrimSpace(r.FBProfileID); id != "" {
		return id
	}
	return strings.TrimSpace(r.ProfileID)
}

// UpdateRecordRequest is a partial update of a record.
type UpdateRecordRequest struct {
	Status           *Status         `json:"status"`
	GeneratedMessage nullable.String `json:"generated_message"`
	Note             nullable.String `json:"note"`
}

// Generate renders the profile's template for the founder and stores the
// result as a new record with status message_generated.
// Nothing is written when any lookup fails.
func (s *Service) Generate(req GenerateRequest) (*Record, error) {
	record, reason, err := s.generate(req)
	if err != nil {
		s.observer.GenerationFailed(reason)
		return nil, err
	}
	s.observer.MessageGenerated()
	return record, nil
}

func (s *Service) generate(req GenerateRequest) (*Record, string, error) {
	founderID := strings.TrimSpace(req.FounderID)
	profileID := req.profileID()
	if founderID == "" {
		return nil, ReasonInvalidRequest, apperr.Validation("founder_id is required")
	}
	if profileID == "" {
		return nil, ReasonInvalidRequest, apperr.Validation("fb_profile_id is required")
	}

	// 1. founder and its tool
	f, err := s.founders.GetFounderByID(founderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ReasonFounderNotFound, apperr.NotFound("founder", founderID)
		}
		return nil, ReasonStoreError, err
	}
	if f.ToolID == nil {
		return nil, ReasonNoTool, apperr.Validation("founder has no linked tool")
	}
	t, err := s.tools.GetToolByID(*f.ToolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ReasonNoTool, apperr.Validation("founder has no linked tool")
		}
		return nil, ReasonStoreError, err
	}

	// 2. profile and its template
	p, err := s.profiles.GetProfileByID(profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ReasonProfileNotFound, apperr.NotFound("facebook profile", profileID)
		}
		return nil, ReasonStoreError, err
	}
	if p.TemplateID == nil {
		return nil, ReasonNoTemplate, apperr.Validation("facebook profile has no linked template")
	}
	tmpl, err := s.templates.GetTemplateByID(*p.TemplateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ReasonNoTemplate, apperr.Validation("facebook profile has no linked template")
		}
		return nil, ReasonStoreError, err
	}

	// 3. render and persist
	message := template.Render(tmpl.TemplateContent, template.Values{
		FounderName:     f.FounderName,
		ToolName:        t.ToolName,
		ToolDescription: t.Description(),
	})
	r := &Record{
		FounderID:        f.ID,
		ToolID:           t.ID,
		FBProfileID:      p.ID,
		TemplateID:       &tmpl.ID,
		GeneratedMessage: &message,
		Status:           StatusMessageGenerated,
	}
	if err := s.store.CreateRecord(r); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ReasonStoreError, apperr.Conflict("a linked entity was deleted during generation", err)
		}
		return nil, ReasonStoreError, err
	}

	f.Tool = t
	r.Founder, r.Tool, r.FacebookProfile, r.Template = f, t, p, tmpl
	log.Infof("outreach message generated (ID: %s, founder: %s, profile: %s)", r.ID, f.ID, p.ID)
	return r, "", nil
}

// List returns the records matching f with their relations embedded.
func (s *Service) List(f Filter) ([]Record, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperr.Validation("invalid status: %s", f.Status)
	}
	records, err := s.store.ListRecords(f)
	if err != nil {
		return nil, err
	}
	if err := s.attach(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one record with its relations embedded.
func (s *Service) Get(id string) (*Record, error) {
	r, err := s.store.GetRecordByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("outreach record", id)
	}
	if err != nil {
		return nil, err
	}

	one := []Record{*r}
	if err := s.attach(one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Update applies the fields present in req.
func (s *Service) Update(id string, req UpdateRecordRequest) (*Record, error) {
	r, err := s.store.GetRecordByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("outreach record", id)
	}
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperr.Validation("invalid status: %s", *req.Status)
		}
		r.Status = *req.Status
	}
	if req.GeneratedMessage.Set {
		r.GeneratedMessage = req.GeneratedMessage.Value
	}
	if req.Note.Set {
		r.Note = req.Note.Value
	}

	if err := s.store.UpdateRecord(r); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes one record.
func (s *Service) Delete(id string) error {
	if err := s.store.DeleteRecord(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("outreach record", id)
		}
		return err
	}
	log.Infof("outreach record deleted (ID: %s)", id)
	return nil
}

// attach embeds founder (with tool), tool, profile and template in each record.
func (s *Service) attach(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	var founderIDs, profileIDs, templateIDs []string
	for _, r := range records {
		founderIDs = append(founderIDs, r.FounderID)
		profileIDs = append(profileIDs, r.FBProfileID)
		if r.TemplateID != nil {
			templateIDs = append(templateIDs, *r.TemplateID)
		}
	}

	founders, err := s.founders.GetFoundersByIDs(unique(founderIDs))
	if err != nil {
		return err
	}

	var toolIDs []string
	for _, r := range records {
		toolIDs = append(toolIDs, r.ToolID)
	}
	for _, f := range founders {
		if f.ToolID != nil {
			toolIDs = append(toolIDs, *f.ToolID)
		}
	}
	tools, err := s.tools.GetToolsByIDs(unique(toolIDs))
	if err != nil {
		return err
	}
	profiles, err := s.profiles.GetProfilesByIDs(unique(profileIDs))
	if err != nil {
		return err
	}
	templates, err := s.templates.GetTemplatesByIDs(unique(templateIDs))
	if err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		if f, ok := founders[r.FounderID]; ok {
			if f.ToolID != nil {
				if t, ok := tools[*f.ToolID]; ok {
					f.Tool = &t
				}
			}
			r.Founder = &f
		}
		if t, ok := tools[r.ToolID]; ok {
			r.Tool = &t
		}
		if p, ok := profiles[r.FBProfileID]; ok {
			r.FacebookProfile = &p
		}
		if r.TemplateID != nil {
			if tmpl, ok := templates[*r.TemplateID]; ok {
				r.Template = &tmpl
			}
		}
	}
	return nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
