// Package server assembles the fiber application.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"founderreach/internal/apperr"
	"founderreach/internal/dashboard"
	"founderreach/internal/founder"
	"founderreach/internal/metrics"
	"founderreach/internal/middleware"
	"founderreach/internal/outreach"
	"founderreach/internal/pin"
	"founderreach/internal/profile"
	"founderreach/internal/template"
	"founderreach/internal/tool"
	"founderreach/web"
)

// Deps is everything New needs to build the app.
type Deps struct {
	DB          *sqlx.DB
	Driver      string
	CORSOrigins string
	PINRequired bool
	SessionTTL  time.Duration
	Metrics     *metrics.Metrics
}

// New wires stores, services and handlers and registers every route.
func New(d Deps) *fiber.App {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = 30 * time.Minute
	}
	if d.CORSOrigins == "" {
		d.CORSOrigins = "*"
	}

	// stores
	toolStore := tool.NewStore(d.DB)
	founderStore := founder.NewStore(d.DB)
	profileStore := profile.NewStore(d.DB)
	templateStore := template.NewStore(d.DB)
	outreachStore := outreach.NewStore(d.DB)
	pinStore := pin.NewStore(d.DB)

	// services
	toolService := tool.NewService(toolStore)
	founderService := founder.NewService(founderStore, toolStore)
	profileService := profile.NewService(profileStore, templateStore)
	templateService := template.NewService(templateStore)
	outreachService := outreach.NewService(outreachStore, founderStore, toolStore, profileStore, templateStore, d.Metrics)
	dashboardService := dashboard.NewService(founderStore, outreachStore, outreachService)
	pinService := pin.NewService(pinStore, d.PINRequired)

	// handlers
	sessionStore := pin.NewSessionStore(d.DB, d.Driver, d.SessionTTL)
	toolHandler := tool.NewToolHandler(toolService)
	founderHandler := founder.NewFounderHandler(founderService)
	profileHandler := profile.NewProfileHandler(profileService)
	templateHandler := template.NewTemplateHandler(templateService)
	outreachHandler := outreach.NewOutreachHandler(outreachService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)
	pinHandler := pin.NewPinHandler(pinService, sessionStore)

	app := fiber.New(fiber.Config{
		AppName:           "FounderReach",
		Views:             web.NewEngine(),
		PassLocalsToViews: true,
		ErrorHandler:      apperr.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowCredentials: d.CORSOrigins != "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(middleware.RequestMiddleware(d.Metrics))
	app.Use(middleware.PinMiddleware(sessionStore, d.PINRequired))

	app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})
	app.Get("/dashboard", dashboardHandler.HandleShowDashboard)
	app.Get("/lock", pinHandler.HandleShowLockPage)
	app.Post("/lock", pinHandler.HandleUnlock)

	api := app.Group("/api")
	{
		api.Get("/", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"message": "FounderReach API"})
		})
		api.Get("/stats", dashboardHandler.HandleGetStats)

		// [PIN]
		api.Get("/pin/status", pinHandler.HandleStatus)
		api.Post("/pin/setup", pinHandler.HandleSetup)
		api.Post("/pin/verify", pinHandler.HandleVerify)
		api.Post("/pin/change", pinHandler.HandleChange)
		api.Post("/pin/lock", pinHandler.HandleLock)

		// [Tools]
		api.Get("/tools", toolHandler.HandleListTools)
		api.Post("/tools", toolHandler.HandleCreateTool)
		api.Get("/tools/:id", toolHandler.HandleGetTool)
		api.Put("/tools/:id", toolHandler.HandleUpdateTool)
		api.Patch("/tools/:id", toolHandler.HandleUpdateTool)
		api.Delete("/tools/:id", toolHandler.HandleDeleteTool)

		// [Founders]
		api.Get("/founders", founderHandler.HandleListFounders)
		api.Post("/founders", founderHandler.HandleCreateFounder)
		api.Get("/founders/:id", founderHandler.HandleGetFounder)
		api.Put("/founders/:id", founderHandler.HandleUpdateFounder)
		api.Patch("/founders/:id", founderHandler.HandleUpdateFounder)
		api.Delete("/founders/:id", founderHandler.HandleDeleteFounder)
		api.Post("/tool-founder", founderHandler.HandleCreateToolFounder)

		// [Facebook profiles]
		api.Get("/profiles", profileHandler.HandleListProfiles)
		api.Post("/profiles", profileHandler.HandleCreateProfile)
		api.Get("/profiles/:id", profileHandler.HandleGetProfile)
		api.Put("/profiles/:id", profileHandler.HandleUpdateProfile)
		api.Patch("/profiles/:id", profileHandler.HandleUpdateProfile)
		api.Delete("/profiles/:id", profileHandler.HandleDeleteProfile)

		// [Templates]
		api.Get("/templates", templateHandler.HandleListTemplates)
		api.Post("/templates", templateHandler.HandleCreateTemplate)
		api.Get("/templates/:id", templateHandler.HandleGetTemplate)
		api.Put("/templates/:id", templateHandler.HandleUpdateTemplate)
		api.Patch("/templates/:id", templateHandler.HandleUpdateTemplate)
		api.Delete("/templates/:id", templateHandler.HandleDeleteTemplate)

		// [Outreach]
		api.Get("/outreach", outreachHandler.HandleListRecords)
		api.Post("/outreach/generate", outreachHandler.HandleGenerate)
		api.Get("/outreach/:id", outreachHandler.HandleGetRecord)
		api.Put("/outreach/:id", outreachHandler.HandleUpdateRecord)
		api.Patch("/outreach/:id", outreachHandler.HandleUpdateRecord)
		api.Delete("/outreach/:id", outreachHandler.HandleDeleteRecord)
	}

	app.Use(func(c *fiber.Ctx) error {
		return apperr.Respond(c, fiber.NewError(fiber.StatusNotFound, "Not Found"))
	})

	log.Infof("routes registered (PIN gate: %t)", d.PINRequired)
	return app
}
