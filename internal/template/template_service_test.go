package template

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/apperr"
	"founderreach/internal/database"
	"founderreach/internal/database/dbtest"
)

func TestService_CreateTemplateValidation(t *testing.T) {
	svc := NewService(NewStore(dbtest.Open(t)))

	_, err := svc.CreateTemplate(CreateTemplateRequest{TemplateContent: "Hi"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.CreateTemplate(CreateTemplateRequest{TemplateName: "Intro"})
	assert.True(t, apperr.IsValidation(err))

	tmpl, err := svc.CreateTemplate(CreateTemplateRequest{TemplateName: "Intro", TemplateContent: "Hi {founder_name}"})
	require.NoError(t, err)

	content := "Hello {founder_name}"
	updated, err := svc.UpdateTemplate(tmpl.ID, UpdateTemplateRequest{TemplateContent: &content})
	require.NoError(t, err)
	assert.Equal(t, "Intro", updated.TemplateName)
	assert.Equal(t, content, updated.TemplateContent)
}

func TestService_DeleteTemplateClearsReferences(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewService(NewStore(db))

	tmpl, err := svc.CreateTemplate(CreateTemplateRequest{TemplateName: "Intro", TemplateContent: "Hi"})
	require.NoError(t, err)

	now := database.Now()
	toolID, founderID, profileID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	_, err = db.Exec("INSERT INTO tools (id, tool_name, created_at, updated_at) VALUES (?, ?, ?, ?)", toolID, "Widget", now, now)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO founders (id, founder_name, tool_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		founderID, "Ada", toolID, now, now)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO facebook_profiles (id, profile_name, template_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		profileID, "Main", tmpl.ID, now, now)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO outreach_records (id, founder_id, tool_id, fb_profile_id, template_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'message_generated', ?, ?)`, uuid.NewString(), founderID, toolID, profileID, tmpl.ID, now, now)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(tmpl.ID))

	assert.Equal(t, 0, dbtest.Count(t, db, "templates"))
	assert.Equal(t, 1, dbtest.Count(t, db, "facebook_profiles"))
	assert.Equal(t, 1, dbtest.Count(t, db, "outreach_records"))

	var refs int
	require.NoError(t, db.Get(&refs, `SELECT
		(SELECT COUNT(*) FROM facebook_profiles WHERE template_id IS NOT NULL) +
		(SELECT COUNT(*) FROM outreach_records WHERE template_id IS NOT NULL)`))
	assert.Zero(t, refs)

	assert.True(t, apperr.IsNotFound(svc.DeleteTemplate(tmpl.ID)))
}

func TestService_DeleteTemplateRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewService(NewStore(db))

	tmpl, err := svc.CreateTemplate(CreateTemplateRequest{TemplateName: "Intro", TemplateContent: "Hi"})
	require.NoError(t, err)

	now := database.Now()
	_, err = db.Exec("INSERT INTO facebook_profiles (id, profile_name, template_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), "Main", tmpl.ID, now, now)
	require.NoError(t, err)

	dbtest.FailDeletes(t, db, "templates")

	err = svc.DeleteTemplate(tmpl.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsIntegrity(err))
	assert.Equal(t, 1, dbtest.Count(t, db, "templates"))

	var linked int
	require.NoError(t, db.Get(&linked, "SELECT COUNT(*) FROM facebook_profiles WHERE template_id IS NOT NULL"))
	assert.Equal(t, 1, linked)
}
