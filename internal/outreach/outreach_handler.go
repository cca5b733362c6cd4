package outreach

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// OutreachHandler serves /api/outreach.
type OutreachHandler struct {
	service *Service
}

// NewOutreachHandler creates a new handler.
func NewOutreachHandler(service *Service) *OutreachHandler {
	return &OutreachHandler{service: service}
}

// HandleListRecords handles 'GET /api/outreach'.
// Query: tool_id, founder_id, fb_profile_id (or profile_id), status.
func (h *OutreachHandler) HandleListRecords(c *fiber.Ctx) error {
	filter := Filter{
		ToolID:    c.Query("tool_id"),
		FounderID: c.Query("founder_id"),
		ProfileID: c.Query("fb_profile_id", c.Query("profile_id")),
		Status:    Status(c.Query("status")),
	}

	records, err := h.service.List(filter)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(records)
}

// HandleGetRecord handles 'GET /api/outreach/:id'.
func (h *OutreachHandler) HandleGetRecord(c *fiber.Ctx) error {
	r, err := h.service.Get(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(r)
}

// HandleGenerate handles 'POST /api/outreach/generate'.
func (h *OutreachHandler) HandleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	r, err := h.service.Generate(req)
	if err != nil {
		log.Warnf("message generation failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(r)
}

// HandleUpdateRecord handles 'PUT|PATCH /api/outreach/:id'.
func (h *OutreachHandler) HandleUpdateRecord(c *fiber.Ctx) error {
	var req UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	r, err := h.service.Update(c.Params("id"), req)
	if err != nil {
		log.Warnf("outreach record update failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(r)
}

// HandleDeleteRecord handles 'DELETE /api/outreach/:id'.
func (h *OutreachHandler) HandleDeleteRecord(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Outreach record deleted successfully"})
}
