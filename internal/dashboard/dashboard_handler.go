package dashboard

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/outreach"
)

// DashboardHandler serves the stats API and the dashboard page.
type DashboardHandler struct {
	service *Service
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(service *Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// HandleGetStats handles 'GET /api/stats'.
func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(stats)
}

// HandleShowDashboard handles 'GET /dashboard'.
func (h *DashboardHandler) HandleShowDashboard(c *fiber.Ctx) error {
	data, err := h.service.GetDashboardData()
	if err != nil {
		log.Errorf("dashboard data lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard data")
	}

	return c.Render("dashboard", fiber.Map{
		"Title":    "FounderReach | Dashboard",
		"Data":     data,
		"Statuses": outreach.Statuses,
	}, "layout")
}
