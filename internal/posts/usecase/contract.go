package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
)

type CreateParams struct {
	Title    string
	Body     string
	Tags     []string
	Category models.Category
}

// UpdateParams carries a partial update; nil fields keep their stored value.
type UpdateParams struct {
	Title    *string
	Body     *string
	Tags     *[]string
	Category *models.Category
}

// UpdateFields is the full replacement set the repository writes.
type UpdateFields struct {
	Title    string
	Body     string
	Tags     []string
	Category models.Category
}

// ListFilter is the normalized persistence-layer specification built from
// request query parameters.
type ListFilter struct {
	Category string
	Tag      string
	Search   string
	SortBy   string // whitelisted column name
	SortDesc bool
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, authorID uuid.UUID, params CreateParams) (models.Post, error)
	Get(ctx context.Context, id uuid.UUID) (models.Post, error)
	// GetForRead returns the post after atomically incrementing its view
	// counter in the same statement.
	GetForRead(ctx context.Context, id uuid.UUID) (models.Post, error)
	List(ctx context.Context, filter ListFilter) ([]models.Post, int, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
