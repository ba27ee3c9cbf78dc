package middleware

import (
	"strings"
	"time"

	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/config"
	"port-russell-api/internal/pkg/response"
	"port-russell-api/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the browser session cookie
const SessionCookie = "token"

// Where the request carried its token; a cookie failure is a soft
// session expiry for a browser, a header failure is a hard API 401.
type tokenSource int

const (
	sourceHeader tokenSource = iota
	sourceCookie
)

// AuthMiddleware is the auth gate every protected route passes through.
// It resolves a bearer token (Authorization header first, cookie
// second), verifies it, loads the referenced user with the password
// column omitted, and attaches it to the request. Nothing downstream
// ever sees a request with a stale or unverified user.
func AuthMiddleware(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string
		source := sourceHeader

		// 1. Authorization header takes priority (API clients)
		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// 2. Fall back to the session cookie (browser clients)
		if accessToken == "" {
			if cookie := c.Cookies(SessionCookie); cookie != "" {
				accessToken = cookie
				source = sourceCookie
			}
		}

		// 3. No token at all
		if accessToken == "" {
			if wantsHTML(c) {
				return c.Redirect("/")
			}
			return response.Unauthorized(c, "missing token")
		}

		// 4. Verify signature and expiry
		claims, err := token.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			return rejectToken(c, cfg, source, err)
		}

		// 5. The token may outlive its account; a verified token whose
		// user is gone is still an unauthenticated request.
		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return rejectToken(c, cfg, source, token.ErrTokenInvalid)
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

// rejectToken short-circuits a request whose token failed verification
// or resolution.
func rejectToken(c *fiber.Ctx, cfg *config.Config, source tokenSource, err error) error {
	if source == sourceCookie {
		clearSessionCookie(c, cfg)
		return c.Redirect("/")
	}
	if err == token.ErrTokenExpired {
		return response.Unauthorized(c, "token expired")
	}
	return response.Unauthorized(c, "invalid token")
}

// wantsHTML reports whether the client's Accept header favors HTML
func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML) != ""
}

// clearSessionCookie expires the session cookie
func clearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}
