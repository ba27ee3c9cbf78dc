package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"port-russell-api/internal/adapters/http/middleware"
	"port-russell-api/internal/adapters/http/routes"
	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	_ "port-russell-api/docs" // Swagger docs
)

// @title Port Russell Marina API
// @version 1.0
// @description API de gestion des catways et réservations du port de plaisance Russell

// @contact.name API Support
// @contact.email capitainerie@port-russell.fr

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default data
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Create Fiber app with the server-rendered view engine
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      "Port Russell Marina API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		Views:        engine,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
