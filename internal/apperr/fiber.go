package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Respond writes err as {"detail": "..."} with the matching status.
func Respond(c *fiber.Ctx, err error) error {
	status := Status(err)

	var fe *fiber.Error
	if KindOf(err) == 0 && errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}

	if status >= fiber.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Errorf("request failed: %v", err)
	}
	return c.Status(status).JSON(fiber.Map{"detail": Message(err)})
}

// ErrorHandler is the fiber.Config ErrorHandler for the JSON API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return Respond(c, err)
}
