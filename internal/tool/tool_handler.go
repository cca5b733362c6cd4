package tool

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// ToolHandler serves /api/tools.
type ToolHandler struct {
	service *Service
}

// NewToolHandler creates a new handler.
func NewToolHandler(service *Service) *ToolHandler {
	return &ToolHandler{service: service}
}

// HandleListTools handles 'GET /api/tools'.
func (h *ToolHandler) HandleListTools(c *fiber.Ctx) error {
	tools, err := h.service.GetAllTools()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(tools)
}

// HandleGetTool handles 'GET /api/tools/:id'.
func (h *ToolHandler) HandleGetTool(c *fiber.Ctx) error {
	t, err := h.service.GetToolByID(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(t)
}

// HandleCreateTool handles 'POST /api/tools'.
func (h *ToolHandler) HandleCreateTool(c *fiber.Ctx) error {
	var req CreateToolRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	t, err := h.service.CreateTool(req)
	if err != nil {
		log.Warnf("tool create failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(t)
}

// HandleUpdateTool handles 'PUT|PATCH /api/tools/:id'.
func (h *ToolHandler) HandleUpdateTool(c *fiber.Ctx) error {
	var req UpdateToolRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	t, err := h.service.UpdateTool(c.Params("id"), req)
	if err != nil {
		log.Warnf("tool update failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(t)
}

// HandleDeleteTool handles 'DELETE /api/tools/:id'.
func (h *ToolHandler) HandleDeleteTool(c *fiber.Ctx) error {
	result, err := h.service.DeleteTool(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message":                  "Tool deleted successfully",
		"deleted_founders":         result.Founders,
		"deleted_outreach_records": result.Records,
	})
}
