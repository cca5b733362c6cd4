package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RequestObserver receives one call per finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestMiddleware logs every request and reports it to observer.
// Errors are turned into responses here so the status code is final.
func RequestMiddleware(observer RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if observer != nil {
			observer.ObserveRequest(c.Method(), route, status, elapsed)
		}

		entry := log.WithFields(log.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"route":   route,
			"status":  status,
			"latency": elapsed.String(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Debug("request")
		}
		return nil
	}
}
