package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsLocal = "claims"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success it stores the token claims in c.Locals for downstream handlers.
func NewAuthMiddleware(gen *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				// Fallback: treat entire header as token (for non-standard clients)
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := gen.Parse(tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": authFailureMessage(err)})
		}
		c.Locals(claimsLocal, claims)
		return c.Next()
	}
}

// RequireIdentity gates a route to one exact account name. It must run after
// NewAuthMiddleware.
func RequireIdentity(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil || claims.User() != expected {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "insufficient privileges"})
		}
		return c.Next()
	}
}

// ClaimsFromCtx returns claims stored by NewAuthMiddleware, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(claimsLocal).(*Claims)
	return claims
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token expired"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid token signature"
	case errors.Is(err, ErrWrongIssuer):
		return "invalid token issuer"
	default:
		return "malformed token"
	}
}
