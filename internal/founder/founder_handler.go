package founder

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// FounderHandler serves /api/founders and /api/tool-founder.
type FounderHandler struct {
	service *Service
}

// NewFounderHandler creates a new handler.
func NewFounderHandler(service *Service) *FounderHandler {
	return &FounderHandler{service: service}
}

// HandleListFounders handles 'GET /api/founders?tool_id='.
func (h *FounderHandler) HandleListFounders(c *fiber.Ctx) error {
	founders, err := h.service.GetAllFounders(c.Query("tool_id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(founders)
}

// HandleGetFounder handles 'GET /api/founders/:id'.
func (h *FounderHandler) HandleGetFounder(c *fiber.Ctx) error {
	f, err := h.service.GetFounderByID(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(f)
}

// HandleCreateFounder handles 'POST /api/founders'.
func (h *FounderHandler) HandleCreateFounder(c *fiber.Ctx) error {
	var req CreateFounderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	f, err := h.service.CreateFounder(req)
	if err != nil {
		log.Warnf("founder create failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(f)
}

// HandleCreateToolFounder handles 'POST /api/tool-founder'.
func (h *FounderHandler) HandleCreateToolFounder(c *fiber.Ctx) error {
	var req CreateToolFounderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	created, err := h.service.CreateToolWithFounder(req)
	if err != nil {
		log.Warnf("tool+founder create failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(created)
}

// HandleUpdateFounder handles 'PUT|PATCH /api/founders/:id'.
func (h *FounderHandler) HandleUpdateFounder(c *fiber.Ctx) error {
	var req UpdateFounderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	f, err := h.service.UpdateFounder(c.Params("id"), req)
	if err != nil {
		log.Warnf("founder update failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(f)
}

// HandleDeleteFounder handles 'DELETE /api/founders/:id'.
func (h *FounderHandler) HandleDeleteFounder(c *fiber.Ctx) error {
	records, err := h.service.DeleteFounder(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message":                  "Founder deleted successfully",
		"deleted_outreach_records": records,
	})
}
