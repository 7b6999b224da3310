package middleware

import (
	"log"
	"strings"

	"musicstore/internal/authz"
	"musicstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// AuthRequired is a Fiber middleware to check for a valid JWT token. On
// success the resolved caller identity is stored in the request locals and
// retrievable with IdentityFromCtx.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		identity := authz.Identity{}
		if v, ok := claims["user_id"].(string); ok {
			identity.UserID = v
		}
		if v, ok := claims["username"].(string); ok {
			identity.Username = v
		}
		if v, ok := claims["role"].(string); ok {
			identity.Role = v
		}
		if !identity.Resolved() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(identityKey, identity)

		// Continue to the next handler
		return c.Next()
	}
}

// IdentityFromCtx returns the identity resolved by AuthRequired. The second
// return value is false on routes that did not pass through the middleware.
func IdentityFromCtx(c *fiber.Ctx) (authz.Identity, bool) {
	identity, ok := c.Locals(identityKey).(authz.Identity)
	return identity, ok
}
