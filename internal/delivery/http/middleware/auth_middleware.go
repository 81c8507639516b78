package middleware

import (
	"errors"
	"strings"

	"talentx/internal/domain/user"
	"talentx/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Authorization token required", nil, nil)
		}

		identity, err := m.jwt.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			case errors.Is(err, jwt.ErrInvalidRole):
				return NewAppError(fiber.StatusUnauthorized, "Invalid user role", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxIdentityKey, identity)
		return c.Next()
	}
}

// RequireRole must run after Middleware.
func RequireRole(role user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
		}
		if identity.Role != role {
			return NewAppError(fiber.StatusForbidden, "Insufficient permissions", fiber.Map{
				"required": []user.Role{role},
				"current":  identity.Role,
			}, nil)
		}
		return c.Next()
	}
}

func IdentityFrom(c fiber.Ctx) (user.Identity, bool) {
	identity, ok := c.Locals(CtxIdentityKey).(user.Identity)
	if !ok || !identity.Role.Valid() {
		return user.Identity{}, false
	}
	return identity, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
