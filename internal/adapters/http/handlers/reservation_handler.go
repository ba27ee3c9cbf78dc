package handlers

import (
	"errors"
	"strconv"

	"port-russell-api/internal/core/domain"
	"port-russell-api/internal/core/services"
	"port-russell-api/internal/pkg/pagination"
	"port-russell-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservationRequest represents reservation creation request body
type CreateReservationRequest struct {
	ClientName string `json:"client_name" form:"client_name"`
	BoatName   string `json:"boat_name" form:"boat_name"`
	StartDate  string `json:"start_date" form:"start_date"`
	EndDate    string `json:"end_date" form:"end_date"`
}

// UpdateReservationRequest carries the mutable reservation fields
type UpdateReservationRequest struct {
	ClientName *string `json:"client_name" form:"client_name"`
	BoatName   *string `json:"boat_name" form:"boat_name"`
	StartDate  *string `json:"start_date" form:"start_date"`
	EndDate    *string `json:"end_date" form:"end_date"`
}

// Create books the catway in the path for the authenticated user
// @Summary Create reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Param body body CreateReservationRequest true "Reservation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catways/{number}/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.StartDate == "" || req.EndDate == "" {
		return response.BadRequest(c, "Start and end dates are required")
	}

	input := &services.CreateReservationInput{
		ClientName: req.ClientName,
		BoatName:   req.BoatName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	reservation, err := h.reservationService.Create(c.Context(), c.Params("number"), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Client name, boat name and valid dates are required")
		case errors.Is(err, domain.ErrDatesOutOfOrder):
			return response.BadRequest(c, "End date must be after start date")
		case errors.Is(err, domain.ErrCatwayNotFound):
			return response.NotFound(c, "Catway not found")
		case errors.Is(err, domain.ErrCatwayUnavailable):
			return response.Conflict(c, "Catway is already reserved for this period")
		default:
			return response.InternalServerError(c, "Failed to create reservation")
		}
	}

	return response.Created(c, "Reservation created successfully", fiber.Map{
		"reservation": reservation,
	})
}

// ListByCatway lists reservations of the catway in the path
// @Summary List reservations of a catway
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Success 200 {object} response.Response
// @Router /catways/{number}/reservations [get]
func (h *ReservationHandler) ListByCatway(c *fiber.Ctx) error {
	reservations, err := h.reservationService.ListByCatway(c.Context(), c.Params("number"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list reservations")
	}

	return response.Success(c, "Reservations retrieved successfully", fiber.Map{
		"reservations": reservations,
	})
}

// ListAll lists every reservation; renders the reservations page for
// browsers, paginated JSON otherwise
// @Summary List all reservations
// @Tags Reservations
// @Produce json,html
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} pagination.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListAll(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	reservations, total, err := h.reservationService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list reservations")
	}

	if wantsHTML(c) {
		return c.Render("reservations/list", fiber.Map{
			"Title":        "Liste des Réservations",
			"Reservations": reservations,
		})
	}

	return c.JSON(pagination.NewResponse(reservations, params, total))
}

// GetByID gets one reservation of the catway in the path
// @Summary Get reservation
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catways/{number}/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	reservation, err := h.reservationService.GetByID(c.Context(), c.Params("number"), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to get reservation")
	}

	return response.Success(c, "Reservation retrieved successfully", fiber.Map{
		"reservation": reservation,
	})
}

// Update edits a reservation through the allow-list of mutable fields
// @Summary Update reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Param id path int true "Reservation ID"
// @Param body body UpdateReservationRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catways/{number}/reservations/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	var req UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateReservationInput{
		ClientName: req.ClientName,
		BoatName:   req.BoatName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	reservation, err := h.reservationService.Update(c.Context(), c.Params("number"), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format")
		case errors.Is(err, domain.ErrDatesOutOfOrder):
			return response.BadRequest(c, "End date must be after start date")
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrCatwayUnavailable):
			return response.Conflict(c, "Catway is already reserved for this period")
		default:
			return response.InternalServerError(c, "Failed to update reservation")
		}
	}

	return response.Success(c, "Reservation updated successfully", fiber.Map{
		"reservation": reservation,
	})
}

// Delete cancels a reservation
// @Summary Delete reservation
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catways/{number}/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	if err := h.reservationService.Delete(c.Context(), c.Params("number"), uint(id)); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to delete reservation")
	}

	return response.Success(c, "Reservation deleted successfully", nil)
}
