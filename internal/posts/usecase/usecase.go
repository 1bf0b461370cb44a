package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

const (
	maxTitleLen = 200
	minBodyLen  = 10
	maxTagLen   = 50
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) List(ctx context.Context, params ListParams) ([]models.Post, pagination.Meta, error) {
	filter := BuildFilter(params)

	posts, total, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return posts, pagination.NewMeta(params.Pagination.Normalize(), total), nil
}

// Get fetches a post and counts the read. Every fetch increments the view
// counter, the increment is a single atomic statement in the repository.
func (u *UseCase) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	return u.repo.GetForRead(ctx, id)
}

func (u *UseCase) Create(ctx context.Context, authorID uuid.UUID, params CreateParams) (models.Post, error) {
	if params.Category == "" {
		params.Category = models.CategoryGeneral
	}
	if params.Tags == nil {
		params.Tags = []string{}
	}
	params.Title = strings.TrimSpace(params.Title)
	params.Tags = trimTags(params.Tags)

	if err := validatePost(params.Title, params.Body, params.Tags, params.Category); err != nil {
		return models.Post{}, err
	}

	return u.repo.Create(ctx, authorID, params)
}

// Update replaces the provided fields of a post. The caller must be the
// post's author or an Admin; every violated field constraint is reported,
// not just the first.
func (u *UseCase) Update(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role, params UpdateParams) (models.Post, error) {
	post, err := u.repo.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if !models.CanModify(actorID, actorRole, post.AuthorID) {
		return models.Post{}, pkgErrors.ErrForbidden
	}

	fields := UpdateFields{
		Title:    post.Title,
		Body:     post.Body,
		Tags:     post.Tags,
		Category: post.Category,
	}
	if params.Title != nil {
		fields.Title = strings.TrimSpace(*params.Title)
	}
	if params.Body != nil {
		fields.Body = *params.Body
	}
	if params.Tags != nil {
		fields.Tags = trimTags(*params.Tags)
	}
	if params.Category != nil {
		fields.Category = *params.Category
	}

	if err = validatePost(fields.Title, fields.Body, fields.Tags, fields.Category); err != nil {
		return models.Post{}, err
	}

	return u.repo.Update(ctx, id, fields)
}

func (u *UseCase) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole models.Role) error {
	post, err := u.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !models.CanModify(actorID, actorRole, post.AuthorID) {
		return pkgErrors.ErrForbidden
	}

	return u.repo.Delete(ctx, id)
}

// trimTags trims whitespace around each tag, preserving order and
// duplicates exactly as submitted.
func trimTags(tags []string) []string {
	trimmed := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed = append(trimmed, strings.TrimSpace(tag))
	}
	return trimmed
}

func validatePost(title, body string, tags []string, category models.Category) error {
	var merr *multierror.Error

	if titleLen := utf8.RuneCountInString(title); titleLen == 0 || titleLen > maxTitleLen {
		merr = multierror.Append(merr, errors.New("title must be 1-200 characters"))
	}
	if utf8.RuneCountInString(body) < minBodyLen {
		merr = multierror.Append(merr, errors.New("body must be at least 10 characters"))
	}
	for i, tag := range tags {
		if tagLen := utf8.RuneCountInString(tag); tagLen == 0 || tagLen > maxTagLen {
			merr = multierror.Append(merr, fmt.Errorf("tag %d must be 1-50 characters", i+1))
		}
	}
	if !category.Valid() {
		merr = multierror.Append(merr, errors.New("category must be one of the known categories"))
	}

	if merr == nil {
		return nil
	}

	fields := make([]string, 0, len(merr.Errors))
	for _, fieldErr := range merr.Errors {
		fields = append(fields, fieldErr.Error())
	}
	return pkgErrors.NewValidationError(fields...)
}
