// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves the Authorization bearer token against the
// session registry. Sessions are process-local: a restart logs every
// client out.
func SessionAuth(sessions *services.SessionRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
		}

		userID, ok := sessions.Resolve(token)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired session"})
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// APIKeyAuth authenticates requests with a developer API key, taken
// from X-API-Key or the Authorization bearer slot.
func APIKeyAuth(keys *services.APIKeyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-Key")
		if key == "" {
			key = bearerToken(c)
		}
		if key == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing API key"})
		}

		user, err := keys.Authenticate(key)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or revoked API key"})
		}

		c.Locals("userId", user.ID)
		c.Locals("username", user.Username)
		return c.Next()
	}
}

// GetUserID returns the authenticated user's ID from request locals.
func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
