package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/comments/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/models"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

type UseCase interface {
	ListByPost(ctx context.Context, postID uuid.UUID, params pagination.Params) ([]models.Comment, pagination.Meta, error)
	Create(ctx context.Context, authorID uuid.UUID, params usecase.CreateParams) (models.Comment, error)
	Update(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role, body string) (models.Comment, error)
	Delete(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role) error
}
