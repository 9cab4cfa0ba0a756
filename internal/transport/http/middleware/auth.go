package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Authenticator resolves a principal from an opaque session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Principal, error)
}

const (
	principalKey = "principal"
	tokenKey     = "session_token"
)

// SessionGuard extracts the bearer token, resolves the caller and stores the
// principal in request locals. Unresolvable callers are rejected with 401
// before any handler work happens.
func SessionGuard(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		principal, err := auth.Authenticate(c.Context(), token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		c.Locals(principalKey, principal)
		c.Locals(tokenKey, token)
		return c.Next()
	}
}

// BearerToken returns the token from the Authorization header, or "".
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Principal returns the authenticated caller stored by SessionGuard.
func Principal(c *fiber.Ctx) *entities.Principal {
	p, _ := c.Locals(principalKey).(*entities.Principal)
	return p
}

// SessionToken returns the raw token stored by SessionGuard.
func SessionToken(c *fiber.Ctx) string {
	t, _ := c.Locals(tokenKey).(string)
	return t
}
