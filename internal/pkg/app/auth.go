package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/token"
)

const identityKey = "identity"

// Identity is the authenticated caller attached to the request by the auth
// middleware. The stored password hash never travels with it.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     models.Role
}

// UserProvider resolves a token subject to a stored user.
type UserProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// NewAuthMiddleware verifies the bearer token and attaches the caller's
// identity to the request. A token whose subject no longer exists in
// storage is rejected.
func NewAuthMiddleware(tokens *token.Manager, users UserProvider, logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return pkgErrors.ErrUnauthenticated
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("reject token", slog.String("error", err.Error()))
			return err
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return pkgErrors.ErrInvalidToken
		}

		user, err := users.GetByID(ctx.UserContext(), userID)
		if err != nil {
			if errors.Is(err, pkgErrors.ErrUserNotFound) {
				return pkgErrors.ErrUnknownUser
			}
			return err
		}

		ctx.Locals(identityKey, Identity{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})

		return ctx.Next()
	}
}

// IdentityFromCtx returns the identity attached by the auth middleware.
func IdentityFromCtx(ctx *fiber.Ctx) (Identity, error) {
	identity, ok := ctx.Locals(identityKey).(Identity)
	if !ok {
		return Identity{}, pkgErrors.ErrUnauthenticated
	}
	return identity, nil
}

// NewRequireAuthorMiddleware gates routes reserved for authoring roles.
func NewRequireAuthorMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, err := IdentityFromCtx(ctx)
		if err != nil {
			return err
		}
		if !identity.Role.CanAuthor() {
			return pkgErrors.ErrForbidden
		}
		return ctx.Next()
	}
}

// NewRequireAdminMiddleware gates admin-only routes.
func NewRequireAdminMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, err := IdentityFromCtx(ctx)
		if err != nil {
			return err
		}
		if identity.Role != models.RoleAdmin {
			return pkgErrors.ErrForbidden
		}
		return ctx.Next()
	}
}
