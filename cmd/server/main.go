package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/database"
	"github.com/proplens/proplens/internal/handlers"
	"github.com/proplens/proplens/internal/middleware"
	"github.com/proplens/proplens/internal/types"

	_ "github.com/proplens/proplens/docs/api" // Swagger docs
)

// @title Proplens API
// @version 1.0.0
// @description Property management service: listings, dashboard analytics, tutorials, and assistant chat
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/proplens/proplens

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed starter tutorials
	if cfg.SeedTutorials {
		if err := database.SeedTutorials(db); err != nil {
			log.Fatalf("Failed to seed tutorials: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("proplens")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	app.Get("/health", healthHandler.GetHealth)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	auth := middleware.RequireAuth(cfg)

	propertyHandler := &handlers.PropertyHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{DB: db}
	tutorialHandler := &handlers.TutorialHandler{DB: db}
	chatHandler := &handlers.ChatHandler{DB: db}
	authHandler := &handlers.AuthHandler{DB: db}

	// Identity
	api.Get("/auth/user", auth, authHandler.GetCurrentUser)

	// Property listings (public reads, authenticated mutations)
	api.Get("/properties", propertyHandler.ListProperties)
	api.Get("/properties/:id", propertyHandler.GetProperty)
	api.Post("/properties", auth, propertyHandler.CreateProperty)
	api.Put("/properties/:id", auth, propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", auth, propertyHandler.DeleteProperty)

	// Dashboard and analytics
	api.Get("/dashboard/stats", auth, analyticsHandler.GetDashboardStats)
	api.Get("/analytics", auth, analyticsHandler.ListAnalytics)
	api.Post("/analytics", auth, analyticsHandler.CreateAnalytics)

	// Tutorials. Progress routes precede /:id so "progress" never parses as an id.
	api.Get("/tutorials/progress/me", auth, tutorialHandler.GetMyProgress)
	api.Post("/tutorials/progress", auth, tutorialHandler.UpsertProgress)
	api.Get("/tutorials", tutorialHandler.ListTutorials)
	api.Get("/tutorials/:id", tutorialHandler.GetTutorial)

	// Assistant chat
	api.Get("/ai/chat/history", auth, chatHandler.GetChatHistory)
	api.Post("/ai/chat", auth, chatHandler.SendChatMessage)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
