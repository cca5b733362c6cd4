package pin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
)

// PinHandler serves /api/pin/* and the /lock page.
type PinHandler struct {
	service *Service
	store   *session.Store
}

// NewPinHandler creates a new handler.
func NewPinHandler(service *Service, store *session.Store) *PinHandler {
	return &PinHandler{
		service: service,
		store:   store,
	}
}

// Unlocked reports whether the request carries an unlocked session.
func Unlocked(store *session.Store, c *fiber.Ctx) bool {
	sess, err := store.Get(c)
	if err != nil {
		log.Errorf("session lookup failed: %v", err)
		return false
	}
	unlocked, _ := sess.Get(SessionKey).(bool)
	return unlocked
}

func (h *PinHandler) unlock(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessionKey, true)
	return sess.Save()
}

// HandleStatus handles 'GET /api/pin/status'.
func (h *PinHandler) HandleStatus(c *fiber.Ctx) error {
	configured, err := h.service.Configured()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(Status{
		Configured: configured,
		Required:   h.service.Required(),
		Unlocked:   Unlocked(h.store, c),
	})
}

// HandleSetup handles 'POST /api/pin/setup'.
func (h *PinHandler) HandleSetup(c *fiber.Ctx) error {
	var req SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}
	if err := h.service.SetupPIN(req); err != nil {
		return apperr.Respond(c, err)
	}
	if err := h.unlock(c); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "PIN set successfully"})
}

// HandleVerify handles 'POST /api/pin/verify'.
func (h *PinHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}
	if err := h.service.VerifyPIN(req.PIN); err != nil {
		return apperr.Respond(c, err)
	}
	if err := h.unlock(c); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unlocked"})
}

// HandleChange handles 'POST /api/pin/change'.
func (h *PinHandler) HandleChange(c *fiber.Ctx) error {
	var req ChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body: %v", err))
	}
	if err := h.service.ChangePIN(req); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "PIN changed successfully"})
}

// HandleLock handles 'POST /api/pin/lock'. Browsers are sent back to the lock page.
func (h *PinHandler) HandleLock(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return apperr.Respond(c, err)
	}
	if err := sess.Destroy(); err != nil {
		log.Errorf("lock: session destroy failed: %v", err)
		return apperr.Respond(c, err)
	}
	log.Info("session locked")

	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML {
		return c.Redirect("/lock")
	}
	return c.JSON(fiber.Map{"message": "Locked"})
}

// HandleShowLockPage handles 'GET /lock'.
func (h *PinHandler) HandleShowLockPage(c *fiber.Ctx) error {
	configured, err := h.service.Configured()
	if err != nil {
		log.Errorf("lock page: PIN lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load PIN settings")
	}

	var errorMsg string
	if sess, err := h.store.Get(c); err == nil {
		if flash, ok := sess.Get("flash_error").(string); ok {
			errorMsg = flash
			sess.Delete("flash_error")
			if err := sess.Save(); err != nil {
				log.Errorf("flash error cleanup failed: %v", err)
			}
		}
	}

	return c.Render("lock", fiber.Map{
		"Title":      "FounderReach | Locked",
		"Configured": configured,
		"Error":      errorMsg,
	}, "layout")
}

// HandleUnlock handles 'POST /lock': first PIN setup or verification from the form.
func (h *PinHandler) HandleUnlock(c *fiber.Ctx) error {
	form := new(SetupRequest)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form input")
	}

	configured, err := h.service.Configured()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load PIN settings")
	}
	if configured {
		err = h.service.VerifyPIN(form.PIN)
	} else {
		err = h.service.SetupPIN(*form)
	}

	if err != nil {
		sess, serr := h.store.Get(c)
		if serr != nil {
			log.Errorf("session lookup failed (lock): %v", serr)
			return c.Redirect("/lock")
		}
		sess.Set("flash_error", apperr.Message(err))
		if serr := sess.Save(); serr != nil {
			log.Errorf("flash error save failed: %v", serr)
		}
		return c.Redirect("/lock")
	}

	if err := h.unlock(c); err != nil {
		log.Errorf("session save failed (unlock): %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("session error")
	}
	return c.Redirect("/dashboard")
}
