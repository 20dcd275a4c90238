// Package server implements the remote data service: the JSON/HTTP surface
// the gateway probes and talks to. It persists through the same document
// store abstraction the local fallback uses.
package server

import (
	"context"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/middleware"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds the service dependencies and its Fiber app.
type Server struct {
	config         *config.Config
	store          document.Store
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates the service over an already-opened document store.
func NewServer(cfg *config.Config, store document.Store) *Server {
	s := &Server{
		config:         cfg,
		store:          store,
		promMiddleware: middleware.InitMetrics("retrospace-data"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "retrospace-data",
		DisableStartupMessage: cfg.Env == "production",
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return s
}

// App exposes the Fiber app for tests and for serving.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID before the context middleware so the logger can pick it up.
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	if s.config.TraceEnabled {
		app.Use(middleware.TracingMiddleware())
	}
}

// SetupRoutes configures all routes for the service.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// The gateway's startup probe only checks this answers 200.
	api.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api.Get("/users", s.ListUsers)
	api.Post("/users", s.CreateUser)
	api.Put("/users/:id", s.UpdateUser)

	api.Get("/posts", s.ListPosts)
	api.Post("/posts", s.CreatePost)
	api.Put("/posts/:id", s.UpdatePost)
	api.Delete("/posts/:id", s.DeletePost)

	api.Get("/messages", s.ListMessages)
	api.Post("/messages", s.CreateMessage)
	api.Put("/messages/:id", s.UpdateMessage)

	// Everything outside /api serves the application shell.
	app.Use(s.ServeShell)
}

// Listen starts serving on the configured port.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the server and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	return s.store.Close()
}
