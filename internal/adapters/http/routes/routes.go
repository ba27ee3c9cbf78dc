package routes

import (
	"port-russell-api/internal/adapters/http/handlers"
	"port-russell-api/internal/adapters/http/middleware"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/config"
	"port-russell-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	catwayRepo := repositories.NewCatwayRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	catwayService := services.NewCatwayService(catwayRepo, reservationRepo)
	reservationService := services.NewReservationService(reservationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(authService, userService)
	catwayHandler := handlers.NewCatwayHandler(catwayService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	dashboardHandler := handlers.NewDashboardHandler(reservationService)

	auth := middleware.AuthMiddleware(cfg, userRepo)

	// Public pages & session
	app.Get("/", dashboardHandler.Home)
	app.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Dashboard (protected page)
	app.Get("/dashboard", auth, dashboardHandler.Dashboard)

	// Users
	userRoutes := app.Group("/users")
	userRoutes.Post("/", middleware.AuthRateLimiter(), userHandler.Register)
	userRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.APILogin)
	userRoutes.Get("/", auth, userHandler.ListUsers)
	userRoutes.Get("/me", auth, authHandler.Me)
	userRoutes.Get("/:email", auth, userHandler.GetUser)
	userRoutes.Put("/:email", auth, userHandler.UpdateUser)
	userRoutes.Delete("/:email", auth, userHandler.DeleteUser)

	// Catways and their nested reservations
	catwayRoutes := app.Group("/catways")
	catwayRoutes.Use(auth)
	catwayRoutes.Post("/", catwayHandler.Create)
	catwayRoutes.Get("/", catwayHandler.List)
	catwayRoutes.Get("/:number", catwayHandler.GetByNumber)
	catwayRoutes.Put("/:number", catwayHandler.UpdateState)
	catwayRoutes.Delete("/:number", catwayHandler.Delete)

	catwayRoutes.Post("/:number/reservations", reservationHandler.Create)
	catwayRoutes.Get("/:number/reservations", reservationHandler.ListByCatway)
	catwayRoutes.Get("/:number/reservations/:id", reservationHandler.GetByID)
	catwayRoutes.Put("/:number/reservations/:id", reservationHandler.Update)
	catwayRoutes.Delete("/:number/reservations/:id", reservationHandler.Delete)

	// Reservations overview
	app.Get("/reservations", auth, reservationHandler.ListAll)
}
