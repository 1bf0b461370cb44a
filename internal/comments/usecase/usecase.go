package usecase

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

const maxBodyLen = 1000

type UseCase struct {
	repo   Repository
	posts  PostProvider
	logger *slog.Logger
}

func New(repo Repository, posts PostProvider, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		posts:  posts,
		logger: logger,
	}
}

func (u *UseCase) ListByPost(ctx context.Context, postID uuid.UUID, params pagination.Params) ([]models.Comment, pagination.Meta, error) {
	exists, err := u.posts.Exists(ctx, postID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if !exists {
		return nil, pagination.Meta{}, pkgErrors.ErrPostNotFound
	}

	params = params.Normalize()
	comments, total, err := u.repo.ListByPost(ctx, postID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return comments, pagination.NewMeta(params, total), nil
}

// Create stores a comment on an existing post. The body is trimmed before
// validation; nothing is stored when the parent post is missing.
func (u *UseCase) Create(ctx context.Context, authorID uuid.UUID, params CreateParams) (models.Comment, error) {
	params.Body = strings.TrimSpace(params.Body)
	if err := validateBody(params.Body); err != nil {
		return models.Comment{}, err
	}

	exists, err := u.posts.Exists(ctx, params.PostID)
	if err != nil {
		return models.Comment{}, err
	}
	if !exists {
		return models.Comment{}, pkgErrors.ErrPostNotFound
	}

	return u.repo.Create(ctx, authorID, params)
}

func (u *UseCase) Update(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role, body string) (models.Comment, error) {
	comment, err := u.repo.Get(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}

	if !models.CanModify(actorID, actorRole, comment.AuthorID) {
		return models.Comment{}, pkgErrors.ErrForbidden
	}

	body = strings.TrimSpace(body)
	if err = validateBody(body); err != nil {
		return models.Comment{}, err
	}

	return u.repo.Update(ctx, id, body)
}

func (u *UseCase) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role) error {
	comment, err := u.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !models.CanModify(actorID, actorRole, comment.AuthorID) {
		return pkgErrors.ErrForbidden
	}

	return u.repo.Delete(ctx, id)
}

func validateBody(body string) error {
	if bodyLen := utf8.RuneCountInString(body); bodyLen == 0 || bodyLen > maxBodyLen {
		return pkgErrors.NewValidationError("comment body must be 1-1000 characters")
	}
	return nil
}
