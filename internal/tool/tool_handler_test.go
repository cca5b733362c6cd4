package tool

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/database/dbtest"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	h := NewToolHandler(NewService(NewStore(dbtest.Open(t))))

	app := fiber.New()
	app.Get("/api/tools", h.HandleListTools)
	app.Post("/api/tools", h.HandleCreateTool)
	app.Get("/api/tools/:id", h.HandleGetTool)
	app.Put("/api/tools/:id", h.HandleUpdateTool)
	app.Delete("/api/tools/:id", h.HandleDeleteTool)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHandler_ToolLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, http.MethodPost, "/api/tools",
		`{"tool_name":"Widget","tool_description":"solves X"}`)
	require.Equal(t, http.StatusOK, status)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "solves X", created["tool_description"])

	status, updated := doJSON(t, app, http.MethodPut, "/api/tools/"+id, `{"tool_description":null}`)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, updated["tool_description"])
	assert.Equal(t, "Widget", updated["tool_name"])

	status, deleted := doJSON(t, app, http.MethodDelete, "/api/tools/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Tool deleted successfully", deleted["message"])

	status, body := doJSON(t, app, http.MethodGet, "/api/tools/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["detail"], "tool not found")
}

func TestHandler_CreateToolValidation(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/tools", `{"tool_name":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "tool_name is required", body["detail"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/tools", `{"tool_name":`)
	assert.Equal(t, http.StatusBadRequest, status)
}
