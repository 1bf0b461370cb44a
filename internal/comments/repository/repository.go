package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/comments/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/pkg/sqlxutils"
)

const commentColumns = `c.id, c.post_id, c.author_id, u.username AS author,
	c.body, c.created_at, c.updated_at`

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) Create(ctx context.Context, authorID uuid.UUID, params usecase.CreateParams) (models.Comment, error) {
	createCmd := `
	WITH created AS (
		INSERT INTO comments (id, post_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	)
	SELECT created.id, created.post_id, created.author_id, u.username AS author,
		created.body, created.created_at, created.updated_at
	FROM created
	JOIN users u ON u.id = created.author_id;`

	var comment models.Comment
	err := sqlxutils.Get(ctx, r.db, &comment, createCmd, uuid.New(), params.PostID, authorID, params.Body)
	if err != nil {
		r.logger.Error("create comment", slog.String("error", err.Error()))
		return models.Comment{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return comment, nil
}

func (r *SqlxRepository) Get(ctx context.Context, id uuid.UUID) (models.Comment, error) {
	getCmd := `
	SELECT ` + commentColumns + `
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.id = $1;`

	var comment models.Comment
	err := sqlxutils.Get(ctx, r.db, &comment, getCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, pkgErrors.ErrCommentNotFound
		}

		r.logger.Error("get comment", slog.String("error", err.Error()))
		return models.Comment{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return comment, nil
}

func (r *SqlxRepository) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]models.Comment, int, error) {
	const countCmd = `SELECT COUNT(*) FROM comments WHERE post_id = $1;`

	var total int
	err := sqlxutils.Get(ctx, r.db, &total, countCmd, postID)
	if err != nil {
		r.logger.Error("count comments", slog.String("error", err.Error()))
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	listCmd := `
	SELECT ` + commentColumns + `
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.post_id = $1
	ORDER BY c.created_at DESC
	LIMIT $2 OFFSET $3;`

	comments := make([]models.Comment, 0)
	err = sqlxutils.Select(ctx, r.db, &comments, listCmd, postID, limit, offset)
	if err != nil {
		r.logger.Error("list comments", slog.String("error", err.Error()))
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return comments, total, nil
}

func (r *SqlxRepository) Update(ctx context.Context, id uuid.UUID, body string) (models.Comment, error) {
	updateCmd := `
	UPDATE comments c
	SET body = $2, updated_at = now()
	FROM users u
	WHERE c.id = $1 AND u.id = c.author_id
	RETURNING ` + commentColumns + `;`

	var comment models.Comment
	err := sqlxutils.Get(ctx, r.db, &comment, updateCmd, id, body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, pkgErrors.ErrCommentNotFound
		}

		r.logger.Error("update comment", slog.String("error", err.Error()))
		return models.Comment{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return comment, nil
}

func (r *SqlxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteCmd = `DELETE FROM comments WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error("delete comment", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrCommentNotFound
	}

	return nil
}
