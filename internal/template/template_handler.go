package template

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// TemplateHandler serves /api/templates.
type TemplateHandler struct {
	service *Service
}

// NewTemplateHandler creates a new handler.
func NewTemplateHandler(service *Service) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// HandleListTemplates handles 'GET /api/templates'.
func (h *TemplateHandler) HandleListTemplates(c *fiber.Ctx) error {
	templates, err := h.service.GetAllTemplates()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(templates)
}

// HandleGetTemplate handles 'GET /api/templates/:id'.
func (h *TemplateHandler) HandleGetTemplate(c *fiber.Ctx) error {
	tmpl, err := h.service.GetTemplateByID(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(tmpl)
}

// HandleCreateTemplate handles 'POST /api/templates'.
func (h *TemplateHandler) HandleCreateTemplate(c *fiber.Ctx) error {
	var req CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	tmpl, err := h.service.CreateTemplate(req)
	if err != nil {
		log.Warnf("template create failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(tmpl)
}

// HandleUpdateTemplate handles 'PUT|PATCH /api/templates/:id'.
func (h *TemplateHandler) HandleUpdateTemplate(c *fiber.Ctx) error {
	var req UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	tmpl, err := h.service.UpdateTemplate(c.Params("id"), req)
	if err != nil {
		log.Warnf("template update failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(tmpl)
}

// HandleDeleteTemplate handles 'DELETE /api/templates/:id'.
func (h *TemplateHandler) HandleDeleteTemplate(c *fiber.Ctx) error {
	if err := h.service.DeleteTemplate(c.Params("id")); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Template deleted successfully"})
}
