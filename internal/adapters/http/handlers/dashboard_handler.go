package handlers

import (
	"time"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/core/services"
	"port-russell-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the home and dashboard pages
type DashboardHandler struct {
	reservationService *services.ReservationService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reservationService *services.ReservationService) *DashboardHandler {
	return &DashboardHandler{reservationService: reservationService}
}

// Home renders the public index page with the login form
// @Summary Home page
// @Tags Pages
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Port Russell",
	})
}

// Dashboard shows the authenticated user's currently running
// reservations (started, not yet ended).
// @Summary Dashboard
// @Tags Pages
// @Produce json,html
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	reservations, err := h.reservationService.ListActiveByUser(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	if wantsHTML(c) {
		return c.Render("dashboard", fiber.Map{
			"Title":        "Dashboard - Port Russell",
			"User":         user.ToResponse(),
			"Reservations": reservations,
			"Date":         time.Now().Format("02/01/2006"),
		})
	}

	return response.Success(c, "Dashboard retrieved successfully", fiber.Map{
		"user":         user.ToResponse(),
		"reservations": reservations,
	})
}
