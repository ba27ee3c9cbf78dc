package handlers

import (
	"errors"
	"strings"

	"port-russell-api/internal/adapters/http/middleware"
	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/config"
	"port-russell-api/internal/core/services"
	"port-russell-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body (JSON or form)
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login handles browser login: on success a httpOnly session cookie is
// set (matching the token's own 3-day validity) and HTML clients are
// redirected to the dashboard. JSON clients get the token back instead.
// @Summary Login (browser session)
// @Description Authenticate with email and password; sets a session cookie
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		if wantsHTML(c) {
			return c.Status(fiber.StatusBadRequest).Render("index", fiber.Map{
				"Title": "Port Russell",
				"Error": "Email and password are required",
			})
		}
		return response.BadRequest(c, "Email and password are required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input, h.authService.SessionTTL())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			if wantsHTML(c) {
				return c.Status(fiber.StatusUnauthorized).Render("index", fiber.Map{
					"Title": "Port Russell",
					"Error": "Invalid email or password",
				})
			}
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	h.setSessionCookie(c, result.Token)

	if wantsHTML(c) {
		return c.Redirect("/dashboard")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// APILogin handles API login: returns a long-lived bearer token as JSON
// and never touches cookies.
// @Summary Login (API token)
// @Description Authenticate with email and password; returns a 30-day bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input, h.authService.APITTL())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout clears the session cookie. The token itself stays valid until
// its natural expiry; there is no server-side revocation list.
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json,html
// @Success 200 {object} response.Response
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	if wantsHTML(c) {
		return c.Redirect("/")
	}
	return response.Success(c, "Logged out successfully", nil)
}

// Me returns the current user info
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// setSessionCookie sets the session token cookie; MaxAge tracks the
// token TTL so cookie and token expire together.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.SessionTTL().Seconds()),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie clears the session cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// wantsHTML reports whether the client's Accept header favors HTML
func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML) != ""
}
