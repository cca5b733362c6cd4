package profile

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// ProfileHandler serves /api/profiles.
type ProfileHandler struct {
	service *Service
}

// NewProfileHandler creates a new handler.
func NewProfileHandler(service *Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleListProfiles handles 'GET /api/profiles'.
func (h *ProfileHandler) HandleListProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.GetAllProfiles()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(profiles)
}

// HandleGetProfile handles 'GET /api/profiles/:id'.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	p, err := h.service.GetProfileByID(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(p)
}

// HandleCreateProfile handles 'POST /api/profiles'.
func (h *ProfileHandler) HandleCreateProfile(c *fiber.Ctx) error {
	var req CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	p, err := h.service.CreateProfile(req)
	if err != nil {
		log.Warnf("facebook profile create failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(p)
}

// HandleUpdateProfile handles 'PUT|PATCH /api/profiles/:id'.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}

	p, err := h.service.UpdateProfile(c.Params("id"), req)
	if err != nil {
		log.Warnf("facebook profile update failed: %v", err)
		return apperr.Respond(c, err)
	}
	return c.JSON(p)
}

// HandleDeleteProfile handles 'DELETE /api/profiles/:id'.
func (h *ProfileHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	records, err := h.service.DeleteProfile(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message":                  "Facebook profile deleted successfully",
		"deleted_outreach_records": records,
	})
}
