package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"media-service/internal/domain/dto"
	domain "media-service/internal/domain/repositories"
	"media-service/pkg/errors"
)

const claimsKey = "claims"

// NewAuthGuard validates the bearer token against the auth service and
// stores the resulting claims on the request context. Runs before any
// content validation, so a bad token always wins over a bad file.
func NewAuthGuard(authClient domain.AuthClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get(fiber.HeaderAuthorization)
		if authorization == "" {
			return errors.HandleError(c, errors.ErrUnauthorized("Missing 'Authorization' header"))
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authorization, bearerPrefix) {
			return errors.HandleError(c, errors.ErrUnauthorized("Header 'Authorization' does not match format 'Bearer <token>'"))
		}

		token := strings.TrimSpace(authorization[len(bearerPrefix):])
		if token == "" {
			return errors.HandleError(c, errors.ErrUnauthorized("Token is empty or missing after 'Bearer'"))
		}

		claims, err := authClient.ValidateToken(c.UserContext(), token)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return errors.HandleError(c, errors.ErrUnauthorized("JWT validation failed"))
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireRole gates a route on the authenticated caller's role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(claimsKey).(*dto.TokenClaims)
		if !ok {
			return errors.HandleError(c, errors.ErrUnauthorized("Missing 'Authorization' header"))
		}
		if claims.Role != role {
			return errors.HandleError(c, errors.ErrForbidden("Forbidden"))
		}
		return c.Next()
	}
}
