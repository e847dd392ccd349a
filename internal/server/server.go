package server

import (
	"context"
	"strings"

	"dinedesk-be/internal/bootstrap"
	"dinedesk-be/internal/config"
	"dinedesk-be/internal/pkg/serverutils"
	"dinedesk-be/pkg/metrics"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const bodyLimit = 1 << 20

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "dinedesk",
		BodyLimit: bodyLimit,
	})

	useMiddleware(app, cfg, container)

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", nil))
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Static("/static", cfg.App.WebDir+"/static")

	// pages and chat endpoints keep the paths the browser client calls
	container.PageController.RegisterRoutes(app)
	container.ChatController.RegisterRoutes(app)

	api := app.Group("/api")
	container.AuthController.RegisterRoutes(api)
	container.RestaurantController.RegisterRoutes(api)

	return &Server{app: app, cfg: cfg, container: container}
}

// useMiddleware installs the chain in order: CORS, tracing, error mapping,
// then request metrics so they see the mapped status. Credentials are only
// allowed for explicit origins; fiber refuses them alongside a wildcard.
func useMiddleware(app *fiber.App, cfg *config.Config, container *bootstrap.Container) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: !strings.Contains(cfg.App.CorsAllowedOrigins, "*"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.App.OtelEnabled {
		app.Use(otelfiber.Middleware())
	}
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))
	app.Use(serverutils.MetricsMiddleware())
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	addr := ":" + s.cfg.App.Port
	s.container.Logger.Info("Server", "Listening", map[string]interface{}{
		"address": addr,
	})
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
