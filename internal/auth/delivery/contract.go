package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/auth/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/models"
)

type UseCase interface {
	SignUp(ctx context.Context, params usecase.SignUpParams) (models.User, string, error)
	SignIn(ctx context.Context, params usecase.SignInParams) (models.User, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}
