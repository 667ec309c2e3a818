package routes

import (
	_ "board-web/docs"
	"board-web/internal/controllers"
	"board-web/internal/helpers"
	"board-web/internal/inflight"
	"board-web/internal/middleware"
	"board-web/internal/services"
	"board-web/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services is what the routes hand to their controllers.
type Services struct {
	List     *services.ListService
	Detail   *services.DetailService
	Tokens   *middleware.FormTokens
	Inflight *inflight.Registry
	Metrics  *helpers.Metrics
}

type AppOptions struct {
	CORSOrigins string
	AccessLog   bool
	PublicDir   string
}

func NewApp(s Services, opts AppOptions) *fiber.App {
	// Immutable: form values outlive the request in stored drafts.
	app := fiber.New(fiber.Config{
		AppName:      "board-web",
		Immutable:    true,
		Views:        views.NewEngine(),
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + controllers.ViewIDHeader,
	}))
	if s.Metrics != nil {
		app.Use(middleware.RequestMetrics(s.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	if opts.PublicDir != "" {
		app.Static("/public", opts.PublicDir)
	}

	SetupRoutesBoard(app, s)
	SetupRoutesAPI(app, s)
	return app
}
