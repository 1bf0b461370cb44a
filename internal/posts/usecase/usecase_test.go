package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase/mocks"
)

func newFixture(t *testing.T) (*usecase.UseCase, *mocks.MockRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	return usecase.New(repo, slog.Default()), repo, ctrl
}

func TestCreateDefaultsCategoryAndTags(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	author := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), author, usecase.CreateParams{
			Title:    "Hello",
			Body:     "This is a test body.",
			Tags:     []string{},
			Category: models.CategoryGeneral,
		}).
		Return(models.Post{Title: "Hello", Category: models.CategoryGeneral}, nil)

	post, err := uc.Create(context.Background(), author, usecase.CreateParams{
		Title: "Hello",
		Body:  "This is a test body.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneral, post.Category)
	assert.Equal(t, 0, post.Views)
}

func TestCreatePreservesTagOrderAndDuplicates(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	author := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), author, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params usecase.CreateParams) (models.Post, error) {
			assert.Equal(t, []string{"a", "b", "b"}, params.Tags)
			return models.Post{Tags: params.Tags}, nil
		})

	_, err := uc.Create(context.Background(), author, usecase.CreateParams{
		Title: "Tagged",
		Body:  "This is a test body.",
		Tags:  []string{"a ", " b", "b"},
	})
	require.NoError(t, err)
}

func TestCreateReportsEveryViolatedField(t *testing.T) {
	uc, _, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), uuid.New(), usecase.CreateParams{
		Title:    "",
		Body:     "short",
		Category: "Sports",
	})

	var validationErr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 3)
}

func TestGetCountsView(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().GetForRead(gomock.Any(), id).Return(models.Post{ID: id, Views: 5}, nil)

	post, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, post.Views)
}

func TestUpdateForbiddenForNonAuthor(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()
	actor := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(models.Post{ID: id, AuthorID: owner}, nil)

	title := "New title"
	_, err := uc.Update(context.Background(), id, actor, models.RoleEditor, usecase.UpdateParams{Title: &title})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()

	stored := models.Post{
		ID:       id,
		AuthorID: owner,
		Title:    "Old title",
		Body:     "This is the stored body.",
		Tags:     []string{"go"},
		Category: models.CategoryTechnology,
	}
	repo.EXPECT().Get(gomock.Any(), id).Return(stored, nil)

	title := "New title"
	repo.EXPECT().
		Update(gomock.Any(), id, usecase.UpdateFields{
			Title:    "New title",
			Body:     "This is the stored body.",
			Tags:     []string{"go"},
			Category: models.CategoryTechnology,
		}).
		Return(stored, nil)

	_, err := uc.Update(context.Background(), id, owner, models.RoleEditor, usecase.UpdateParams{Title: &title})
	require.NoError(t, err)
}

func TestUpdateAdminBypassesOwnership(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()
	admin := uuid.New()

	stored := models.Post{ID: id, AuthorID: owner, Title: "Title", Body: "This is the stored body.", Tags: []string{}, Category: models.CategoryGeneral}
	repo.EXPECT().Get(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(stored, nil)

	body := "This body was rewritten by an admin."
	_, err := uc.Update(context.Background(), id, admin, models.RoleAdmin, usecase.UpdateParams{Body: &body})
	require.NoError(t, err)
}

func TestDeleteForbiddenForNonAuthor(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(models.Post{ID: id, AuthorID: uuid.New()}, nil)

	err := uc.Delete(context.Background(), id, uuid.New(), models.RoleUser)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}

func TestDeleteByAuthor(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(models.Post{ID: id, AuthorID: owner}, nil)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := uc.Delete(context.Background(), id, owner, models.RoleEditor)
	require.NoError(t, err)
}

func TestDeleteMissingPost(t *testing.T) {
	uc, repo, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(models.Post{}, pkgErrors.ErrPostNotFound)

	err := uc.Delete(context.Background(), id, uuid.New(), models.RoleAdmin)
	assert.ErrorIs(t, err, pkgErrors.ErrPostNotFound)
}
