package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
)

type UseCase interface {
	List(ctx context.Context, params usecase.ListParams) ([]models.Post, pagination.Meta, error)
	Get(ctx context.Context, id uuid.UUID) (models.Post, error)
	Create(ctx context.Context, authorID uuid.UUID, params usecase.CreateParams) (models.Post, error)
	Update(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role, params usecase.UpdateParams) (models.Post, error)
	Delete(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role) error
}
