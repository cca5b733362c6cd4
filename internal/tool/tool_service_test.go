package tool

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/apperr"
	"founderreach/internal/database/dbtest"
	"founderreach/internal/nullable"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewStore(dbtest.Open(t)))
}

func TestService_CreateToolRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateTool(CreateToolRequest{ToolName: "   "})
	assert.True(t, apperr.IsValidation(err))

	tl, err := svc.CreateTool(CreateToolRequest{ToolName: "  Widget  "})
	require.NoError(t, err)
	assert.Equal(t, "Widget", tl.ToolName)
}

func TestService_UpdateToolPartial(t *testing.T) {
	svc := newTestService(t)

	tl, err := svc.CreateTool(CreateToolRequest{
		ToolName:        "Widget",
		ToolDescription: strPtr("old"),
		WebsiteURL:      strPtr("https://widget.example"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTool(tl.ID, UpdateToolRequest{
		ToolDescription: nullable.Of("new"),
		WebsiteURL:      nullable.Null(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.ToolName)
	assert.Equal(t, "new", updated.Description())
	assert.Nil(t, updated.WebsiteURL)

	got, err := svc.GetToolByID(tl.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Description())
	assert.Nil(t, got.WebsiteURL)

	empty := ""
	_, err = svc.UpdateTool(tl.ID, UpdateToolRequest{ToolName: &empty})
	assert.True(t, apperr.IsValidation(err))
}

func TestService_NotFound(t *testing.T) {
	svc := newTestService(t)
	id := uuid.NewString()

	_, err := svc.GetToolByID(id)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.UpdateTool(id, UpdateToolRequest{})
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.DeleteTool(id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_DeleteToolRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewService(NewStore(db))

	tl, err := svc.CreateTool(CreateToolRequest{ToolName: "Widget"})
	require.NoError(t, err)
	founderID := insertFounder(t, db, &tl.ID)
	insertRecord(t, db, founderID, tl.ID, insertProfile(t, db))

	dbtest.FailDeletes(t, db, "tools")

	_, err = svc.DeleteTool(tl.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsIntegrity(err))
	assert.Equal(t, 1, dbtest.Count(t, db, "tools"))
	assert.Equal(t, 1, dbtest.Count(t, db, "founders"))
	assert.Equal(t, 1, dbtest.Count(t, db, "outreach_records"))
}
