package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/auth"
)

// Locals keys for authenticated request state.
const (
	// UserIDKey holds the authenticated user's document key.
	UserIDKey = "user_id"
)

// GetUserID extracts the authenticated user key from the request context.
// Returns empty string if the request was not authenticated.
func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}

// RequireAuth returns a middleware that validates bearer access tokens and
// stores the subject in the request locals.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperr.Wrap(apperr.Unauthorized, "missing token", auth.ErrMissingToken)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperr.Wrap(apperr.Unauthorized, "malformed authorization header", auth.ErrInvalidToken)
		}

		claims, err := tokens.VerifyAccess(parts[1])
		if err != nil {
			return apperr.Wrap(apperr.Unauthorized, "invalid access token", err)
		}

		c.Locals(UserIDKey, claims.Subject)
		return c.Next()
	}
}
