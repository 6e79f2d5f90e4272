// Package middleware holds the Fiber middleware shared across features.
package middleware

import (
	"net/http"
	"strings"

	"castboard/internal/auth"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// RequireAuth validates the Bearer token and stores the authenticated user id
// in the request locals.
func RequireAuth(jwtSvc *auth.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing_bearer_token",
			})
		}

		claims, err := jwtSvc.ValidateToken(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid_token",
			})
		}

		c.Locals(userIDKey, claims.Subject)
		return c.Next()
	}
}

// UserID returns the authenticated user id, or empty when unauthenticated.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(userIDKey).(string); ok {
		return id
	}
	return ""
}
