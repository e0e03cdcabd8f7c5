package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/repository"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware resolves the bearer token into a user principal.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs the middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle validates the Authorization header and stores the user in the
// request context.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return apperrors.NewUnauthorized("bearer token required")
	}

	claims, err := m.tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return apperrors.NewUnauthorized("unknown user")
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// PrincipalFromContext returns the authenticated user, if any.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(principalKey).(*domain.User)
	return user, ok
}
