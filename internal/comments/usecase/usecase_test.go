package usecase_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/blog-platform/internal/comments/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/comments/usecase/mocks"
	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

func newFixture(t *testing.T) (*usecase.UseCase, *mocks.MockRepository, *mocks.MockPostProvider, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	posts := mocks.NewMockPostProvider(ctrl)
	return usecase.New(repo, posts, slog.Default()), repo, posts, ctrl
}

func TestCreateTrimsBody(t *testing.T) {
	uc, repo, posts, ctrl := newFixture(t)
	defer ctrl.Finish()

	author := uuid.New()
	postID := uuid.New()

	posts.EXPECT().Exists(gomock.Any(), postID).Return(true, nil)
	repo.EXPECT().
		Create(gomock.Any(), author, usecase.CreateParams{PostID: postID, Body: "nice post"}).
		Return(models.Comment{Body: "nice post"}, nil)

	comment, err := uc.Create(context.Background(), author, usecase.CreateParams{
		PostID: postID,
		Body:   "  nice post  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Body)
}

// A comment on a missing post is rejected before anything is stored.
func TestCreateMissingPost(t *testing.T) {
	uc, _, posts, ctrl := newFixture(t)
	defer ctrl.Finish()

	postID := uuid.New()
	posts.EXPECT().Exists(gomock.Any(), postID).Return(false, nil)

	_, err := uc.Create(context.Background(), uuid.New(), usecase.CreateParams{
		PostID: postID,
		Body:   "orphan",
	})
	assert.ErrorIs(t, err, pkgErrors.ErrPostNotFound)
}

func TestCreateEmptyBody(t *testing.T) {
	uc, _, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), uuid.New(), usecase.CreateParams{
		PostID: uuid.New(),
		Body:   "   ",
	})

	var validationErr *pkgErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateOverlongBody(t *testing.T) {
	uc, _, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), uuid.New(), usecase.CreateParams{
		PostID: uuid.New(),
		Body:   strings.Repeat("x", 1001),
	})

	var validationErr *pkgErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestListByPostMissingPost(t *testing.T) {
	uc, _, posts, ctrl := newFixture(t)
	defer ctrl.Finish()

	postID := uuid.New()
	posts.EXPECT().Exists(gomock.Any(), postID).Return(false, nil)

	_, _, err := uc.ListByPost(context.Background(), postID, pagination.Params{})
	assert.ErrorIs(t, err, pkgErrors.ErrPostNotFound)
}

func TestListByPost(t *testing.T) {
	uc, repo, posts, ctrl := newFixture(t)
	defer ctrl.Finish()

	postID := uuid.New()
	posts.EXPECT().Exists(gomock.Any(), postID).Return(true, nil)
	repo.EXPECT().
		ListByPost(gomock.Any(), postID, 10, 0).
		Return([]models.Comment{{PostID: postID}}, 1, nil)

	comments, meta, err := uc.ListByPost(context.Background(), postID, pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestUpdateForbiddenForNonAuthor(t *testing.T) {
	uc, repo, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(models.Comment{ID: id, AuthorID: uuid.New()}, nil)

	_, err := uc.Update(context.Background(), id, uuid.New(), models.RoleUser, "edited")
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}

func TestUpdateByAuthor(t *testing.T) {
	uc, repo, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	author := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(models.Comment{ID: id, AuthorID: author}, nil)
	repo.EXPECT().Update(gomock.Any(), id, "edited").Return(models.Comment{ID: id, Body: "edited"}, nil)

	comment, err := uc.Update(context.Background(), id, author, models.RoleUser, " edited ")
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Body)
}

func TestDeleteByAdmin(t *testing.T) {
	uc, repo, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(models.Comment{ID: id, AuthorID: uuid.New()}, nil)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := uc.Delete(context.Background(), id, uuid.New(), models.RoleAdmin)
	require.NoError(t, err)
}

func TestDeleteForbiddenForNonAuthor(t *testing.T) {
	uc, repo, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(models.Comment{ID: id, AuthorID: uuid.New()}, nil)

	err := uc.Delete(context.Background(), id, uuid.New(), models.RoleEditor)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}
