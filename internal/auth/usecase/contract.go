package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
)

type SignUpParams struct {
	Username string
	Email    string
	Password string
}

type SignInParams struct {
	Username string
	Password string
}

type CreateParams struct {
	Username       string
	Email          string
	Role           models.Role
	HashedPassword string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}
