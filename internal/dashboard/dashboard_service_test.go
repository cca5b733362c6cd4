package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/database"
	"founderreach/internal/database/dbtest"
	"founderreach/internal/founder"
	"founderreach/internal/outreach"
	"founderreach/internal/profile"
	"founderreach/internal/template"
	"founderreach/internal/tool"
	"founderreach/web"
)

func newTestService(db *sqlx.DB) *Service {
	founderStore := founder.NewStore(db)
	outreachStore := outreach.NewStore(db)
	records := outreach.NewService(outreachStore, founderStore, tool.NewStore(db),
		profile.NewStore(db), template.NewStore(db), nil)
	return NewService(founderStore, outreachStore, records)
}

// seedRecords inserts one founder with a record per status.
func seedRecords(t *testing.T, db *sqlx.DB, statuses ...outreach.Status) {
	t.Helper()
	now := database.Now()
	toolID, founderID, profileID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	_, err := db.Exec("INSERT INTO tools (id, tool_name, created_at, updated_at) VALUES (?, ?, ?, ?)", toolID, "Widget", now, now)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO founders (id, founder_name, tool_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		founderID, "Ada", toolID, now, now)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO facebook_profiles (id, profile_name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		profileID, "Main", now, now)
	require.NoError(t, err)

	for _, st := range statuses {
		_, err = db.Exec(`INSERT INTO outreach_records (id, founder_id, tool_id, fb_profile_id, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, uuid.NewString(), founderID, toolID, profileID, string(st), now, now)
		require.NoError(t, err)
	}
}

func TestReplyRate(t *testing.T) {
	assert.Equal(t, 0.0, ReplyRate(0, 0))
	assert.Equal(t, 0.0, ReplyRate(3, 0))
	assert.Equal(t, 25.0, ReplyRate(1, 4))
	assert.Equal(t, 33.3, ReplyRate(1, 3))
	assert.Equal(t, 66.7, ReplyRate(2, 3))
	assert.Equal(t, 100.0, ReplyRate(2, 2))
}

func TestService_GetStatsEmpty(t *testing.T) {
	svc := newTestService(dbtest.Open(t))

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, *stats)
}

func TestService_GetStats(t *testing.T) {
	db := dbtest.Open(t)
	seedRecords(t, db,
		outreach.StatusMessageGenerated,
		outreach.StatusMessageGenerated,
		outreach.StatusMessageSent,
		outreach.StatusMessageSent,
		outreach.StatusClosed,
		outreach.StatusReplied,
	)

	stats, err := newTestService(db).GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFounders)
	assert.Equal(t, 4, stats.TotalMessagesSent)
	assert.Equal(t, 1, stats.TotalReplies)
	assert.Equal(t, 25.0, stats.ReplyRate)
}

func TestHandler_ShowDashboard(t *testing.T) {
	db := dbtest.Open(t)
	seedRecords(t, db, outreach.StatusReplied)
	h := NewDashboardHandler(newTestService(db))

	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	app.Get("/dashboard", h.HandleShowDashboard)
	app.Get("/api/stats", h.HandleGetStats)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FounderReach | Dashboard")
	assert.Contains(t, string(body), "100.0%")
	assert.Contains(t, string(body), "Widget")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_founders":1,"total_messages_sent":1,"total_replies":1,"reply_rate":100}`, string(body))
}
