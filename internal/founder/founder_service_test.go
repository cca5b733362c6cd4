package founder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/apperr"
	"founderreach/internal/database"
	"founderreach/internal/database/dbtest"
	"founderreach/internal/nullable"
	"founderreach/internal/tool"
)

type fixture struct {
	db    *sqlx.DB
	tools *tool.Service
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	toolStore := tool.NewStore(db)
	return &fixture{
		db:    db,
		tools: tool.NewService(toolStore),
		svc:   NewService(NewStore(db), toolStore),
	}
}

func (fx *fixture) tool(t *testing.T, name, description string) *tool.Tool {
	t.Helper()
	tl, err := fx.tools.CreateTool(tool.CreateToolRequest{ToolName: name, ToolDescription: &description})
	require.NoError(t, err)
	return tl
}

func TestService_CreateFounderEmbedsTool(t *testing.T) {
	fx := newFixture(t)
	tl := fx.tool(t, "Widget", "solves X")

	f, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Ada", ToolID: &tl.ID})
	require.NoError(t, err)
	require.NotNil(t, f.Tool)
	assert.Equal(t, "Widget", f.Tool.ToolName)

	list, err := fx.svc.GetAllFounders(tl.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.ID, list[0].ID)
	require.NotNil(t, list[0].Tool)
}

func TestService_CreateFounderValidation(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: " "})
	assert.True(t, apperr.IsValidation(err))

	missing := uuid.NewString()
	_, err = fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Ada", ToolID: &missing})
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, 0, dbtest.Count(t, fx.db, "founders"))
}

func TestService_UpdateFounderUnlinksTool(t *testing.T) {
	fx := newFixture(t)
	tl := fx.tool(t, "Widget", "")

	f, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Ada", ToolID: &tl.ID})
	require.NoError(t, err)

	updated, err := fx.svc.UpdateFounder(f.ID, UpdateFounderRequest{ToolID: nullable.Null()})
	require.NoError(t, err)
	assert.Nil(t, updated.ToolID)
	assert.Nil(t, updated.Tool)
	assert.Equal(t, "Ada", updated.FounderName)

	_, err = fx.svc.UpdateFounder(f.ID, UpdateFounderRequest{ToolID: nullable.Of(uuid.NewString())})
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_CreateToolWithFounder(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.svc.CreateToolWithFounder(CreateToolFounderRequest{
		ToolName:    "Widget",
		FounderName: "Ada",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Founder.ToolID)
	assert.Equal(t, created.Tool.ID, *created.Founder.ToolID)
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "tools"))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "founders"))

	_, err = fx.svc.CreateToolWithFounder(CreateToolFounderRequest{ToolName: "Widget"})
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "tools"))
}

func TestService_DeleteFounderCascades(t *testing.T) {
	fx := newFixture(t)
	tl := fx.tool(t, "Widget", "")

	keep, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Keep", ToolID: &tl.ID})
	require.NoError(t, err)
	gone, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Gone", ToolID: &tl.ID})
	require.NoError(t, err)

	now := database.Now()
	profileID := uuid.NewString()
	_, err = fx.db.Exec("INSERT INTO facebook_profiles (id, profile_name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		profileID, "Main", now, now)
	require.NoError(t, err)
	for _, founderID := range []string{keep.ID, gone.ID, gone.ID} {
		_, err = fx.db.Exec(`INSERT INTO outreach_records (id, founder_id, tool_id, fb_profile_id, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, 'message_generated', ?, ?)`, uuid.NewString(), founderID, tl.ID, profileID, now, now)
		require.NoError(t, err)
	}

	removed, err := fx.svc.DeleteFounder(gone.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "founders"))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "outreach_records"))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "tools"))

	_, err = fx.svc.DeleteFounder(gone.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_DeleteFounderRollsBack(t *testing.T) {
	fx := newFixture(t)
	tl := fx.tool(t, "Widget", "")
	f, err := fx.svc.CreateFounder(CreateFounderRequest{FounderName: "Ada", ToolID: &tl.ID})
	require.NoError(t, err)

	now := database.Now()
	profileID := uuid.NewString()
	_, err = fx.db.Exec("INSERT INTO facebook_profiles (id, profile_name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		profileID, "Main", now, now)
	require.NoError(t, err)
	_, err = fx.db.Exec(`INSERT INTO outreach_records (id, founder_id, tool_id, fb_profile_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'message_sent', ?, ?)`, uuid.NewString(), f.ID, tl.ID, profileID, now, now)
	require.NoError(t, err)

	dbtest.FailDeletes(t, fx.db, "founders")

	_, err = fx.svc.DeleteFounder(f.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsIntegrity(err))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "founders"))
	assert.Equal(t, 1, dbtest.Count(t, fx.db, "outreach_records"))
}
