package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
)

type CreateParams struct {
	PostID uuid.UUID
	Body   string
}

type Repository interface {
	Create(ctx context.Context, authorID uuid.UUID, params CreateParams) (models.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.Comment, int, error)
	Update(ctx context.Context, id uuid.UUID, body string) (models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostProvider checks that a parent post exists before a comment is
// created or listed for it.
type PostProvider interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
