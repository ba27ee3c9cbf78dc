package handlers

import (
	"errors"
	"strings"

	"port-russell-api/internal/core/services"
	"port-russell-api/internal/pkg/pagination"
	"port-russell-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateUserRequest carries the mutable user fields
type UpdateUserRequest struct {
	Username *string `json:"username" form:"username"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			return response.BadRequest(c, "Password must be at least 8 characters")
		case errors.Is(err, services.ErrUserAlreadyExists):
			return response.Conflict(c, "Username or email already exists")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", fiber.Map{
		"user": user,
	})
}

// ListUsers lists users; renders the users page for browsers
// @Summary List users
// @Tags Users
// @Produce json,html
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} pagination.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	if wantsHTML(c) {
		return c.Render("users/list", fiber.Map{
			"Title": "Liste des Utilisateurs",
			"Users": result.Users,
		})
	}

	return c.JSON(pagination.NewResponse(result.Users, params, result.Total))
}

// GetUser gets a user by email
// @Summary Get user by email
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	email := c.Params("email")

	user, err := h.userService.GetUserByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUser updates a user through the allow-list of mutable fields
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users/{email} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.userService.UpdateUser(c.Context(), email, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrUsernameAlreadyExists),
			errors.Is(err, services.ErrEmailAlreadyExists):
			return response.Conflict(c, "Username or email already exists")
		case errors.Is(err, services.ErrPasswordTooShort):
			return response.BadRequest(c, "Password must be at least 8 characters")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser deletes a user. The user's reservations are kept.
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{email} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	email := c.Params("email")

	if err := h.userService.DeleteUser(c.Context(), email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}
