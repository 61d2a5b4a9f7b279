package middleware

import (
	"strings"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/eiderao/novva-recruit/internal/service"
	"github.com/eiderao/novva-recruit/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the fully-resolved caller: provider identity plus the tenant
// membership from user_profiles. Every tenant-scoped handler reads it from
// fiber locals.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Name     string
	TenantID uuid.UUID
	IsAdmin  bool
}

// ProfileFinder resolves a provider user id to its tenant profile.
type ProfileFinder interface {
	FindProfileByID(id uuid.UUID) (*model.UserProfile, error)
}

// RequireAuth validates the bearer token with the identity provider and
// resolves the caller's profile. Requests without a valid, tenant-linked
// identity never reach the handler.
func RequireAuth(auth service.AuthServiceInterface, profiles ProfileFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "authorization header is required",
			})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := auth.VerifyToken(c.Context(), token)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token",
			}, err)
		}

		profile, err := profiles.FindProfileByID(user.ID)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "user profile not found",
			}, err)
		}

		name := profile.Name
		if name == "" {
			name = user.Email
		}

		c.Locals(identityKey, &Identity{
			UserID:   profile.ID,
			Email:    user.Email,
			Name:     name,
			TenantID: profile.TenantID,
			IsAdmin:  profile.IsAdmin,
		})
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireAuth, or nil on
// routes that skipped it.
func IdentityFrom(c *fiber.Ctx) *Identity {
	identity, _ := c.Locals(identityKey).(*Identity)
	return identity
}
