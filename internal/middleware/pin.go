package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/pin"
)

// PinMiddleware lets through unlocked sessions only. API calls get 401,
// pages are redirected to /lock. It is a no-op when required is false.
func PinMiddleware(store *session.Store, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !required {
			return c.Next()
		}

		path := c.Path()
		if isPublicPath(path) {
			return c.Next()
		}

		if pin.Unlocked(store, c) {
			c.Locals("ShowLock", true)
			return c.Next()
		}

		log.Warnf("[WARN] locked access (%s %s)", c.Method(), path)
		if strings.HasPrefix(path, "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "PIN required"})
		}
		return c.Redirect("/lock")
	}
}

func isPublicPath(path string) bool {
	switch {
	case path == "/api" || path == "/api/":
		return true
	case strings.HasPrefix(path, "/api/pin/"):
		return true
	case path == "/lock" || path == "/metrics":
		return true
	}
	return false
}
