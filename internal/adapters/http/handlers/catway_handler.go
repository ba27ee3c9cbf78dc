package handlers

import (
	"errors"

	"port-russell-api/internal/core/domain"
	"port-russell-api/internal/core/services"
	"port-russell-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatwayHandler handles catway endpoints
type CatwayHandler struct {
	catwayService *services.CatwayService
}

// NewCatwayHandler creates a new catway handler
func NewCatwayHandler(catwayService *services.CatwayService) *CatwayHandler {
	return &CatwayHandler{catwayService: catwayService}
}

// CreateCatwayRequest represents catway creation request body
type CreateCatwayRequest struct {
	CatwayNumber string `json:"catway_number" form:"catway_number"`
	CatwayType   string `json:"catway_type" form:"catway_type"`
	CatwayState  string `json:"catway_state" form:"catway_state"`
}

// UpdateCatwayRequest carries the only mutable catway field
type UpdateCatwayRequest struct {
	CatwayState string `json:"catway_state" form:"catway_state"`
}

// Create creates a new catway
// @Summary Create catway
// @Tags Catways
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCatwayRequest true "Catway data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catways [post]
func (h *CatwayHandler) Create(c *fiber.Ctx) error {
	var req CreateCatwayRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CatwayNumber == "" {
		return response.BadRequest(c, "Catway number is required")
	}
	if req.CatwayType == "" {
		return response.BadRequest(c, "Catway type is required")
	}
	if req.CatwayState == "" {
		return response.BadRequest(c, "Catway state is required")
	}

	input := &services.CreateCatwayInput{
		CatwayNumber: req.CatwayNumber,
		CatwayType:   req.CatwayType,
		CatwayState:  req.CatwayState,
	}

	catway, err := h.catwayService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCatwayType):
			return response.BadRequest(c, "Catway type must be 'long' or 'short'")
		case errors.Is(err, domain.ErrCatwayExists):
			return response.Conflict(c, "Catway number already exists")
		default:
			return response.InternalServerError(c, "Failed to create catway")
		}
	}

	return response.Created(c, "Catway created successfully", fiber.Map{
		"catway": catway,
	})
}

// List lists all catways; renders the catways page for browsers
// @Summary List catways
// @Tags Catways
// @Produce json,html
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /catways [get]
func (h *CatwayHandler) List(c *fiber.Ctx) error {
	catways, err := h.catwayService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list catways")
	}

	if wantsHTML(c) {
		return c.Render("catways/list", fiber.Map{
			"Title":   "Liste des Catways",
			"Catways": catways,
		})
	}

	return response.Success(c, "Catways retrieved successfully", fiber.Map{
		"catways": catways,
	})
}

// GetByNumber gets a catway by its business number
// @Summary Get catway
// @Tags Catways
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catways/{number} [get]
func (h *CatwayHandler) GetByNumber(c *fiber.Ctx) error {
	catway, err := h.catwayService.GetByNumber(c.Context(), c.Params("number"))
	if err != nil {
		if errors.Is(err, domain.ErrCatwayNotFound) {
			return response.NotFound(c, "Catway not found")
		}
		return response.InternalServerError(c, "Failed to get catway")
	}

	return response.Success(c, "Catway retrieved successfully", fiber.Map{
		"catway": catway,
	})
}

// UpdateState updates a catway's state; number and type are immutable
// @Summary Update catway state
// @Tags Catways
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Param body body UpdateCatwayRequest true "New state"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catways/{number} [put]
func (h *CatwayHandler) UpdateState(c *fiber.Ctx) error {
	var req UpdateCatwayRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	catway, err := h.catwayService.UpdateState(c.Context(), c.Params("number"), req.CatwayState)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Catway state is required")
		case errors.Is(err, domain.ErrCatwayNotFound):
			return response.NotFound(c, "Catway not found")
		default:
			return response.InternalServerError(c, "Failed to update catway")
		}
	}

	return response.Success(c, "Catway updated successfully", fiber.Map{
		"catway": catway,
	})
}

// Delete deletes a catway unless reservations still reference it
// @Summary Delete catway
// @Tags Catways
// @Produce json
// @Security BearerAuth
// @Param number path string true "Catway number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catways/{number} [delete]
func (h *CatwayHandler) Delete(c *fiber.Ctx) error {
	if err := h.catwayService.Delete(c.Context(), c.Params("number")); err != nil {
		switch {
		case errors.Is(err, domain.ErrCatwayNotFound):
			return response.NotFound(c, "Catway not found")
		case errors.Is(err, domain.ErrCatwayReferenced):
			return response.Conflict(c, "Catway has existing reservations")
		default:
			return response.InternalServerError(c, "Failed to delete catway")
		}
	}

	return response.Success(c, "Catway deleted successfully", nil)
}
