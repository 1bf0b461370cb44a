package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
	"github.com/SlavaShagalov/blog-platform/pkg/sqlxutils"
)

const postColumns = `p.id, p.title, p.body, p.author_id, u.username AS author,
	p.tags, p.category, p.views, p.created_at, p.updated_at`

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

func (r *SqlxRepository) Create(ctx context.Context, authorID uuid.UUID, params usecase.CreateParams) (models.Post, error) {
	createCmd := `
	WITH created AS (
		INSERT INTO posts (id, title, body, author_id, tags, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	)
	SELECT ` + strings.ReplaceAll(postColumns, "p.", "created.") + `
	FROM created
	JOIN users u ON u.id = created.author_id;`

	var post models.Post
	err := sqlxutils.Get(ctx, r.db, &post, createCmd,
		uuid.New(), params.Title, params.Body, authorID, pq.StringArray(params.Tags), params.Category)
	if err != nil {
		r.logger.Error("create post", slog.String("error", err.Error()))
		return models.Post{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return post, nil
}

func (r *SqlxRepository) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	getCmd := `
	SELECT ` + postColumns + `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	WHERE p.id = $1;`

	var post models.Post
	err := sqlxutils.Get(ctx, r.db, &post, getCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, pkgErrors.ErrPostNotFound
		}

		r.logger.Error("get post", slog.String("error", err.Error()))
		return models.Post{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return post, nil
}

// GetForRead fetches a post and increments its view counter in one
// statement, so N concurrent reads add exactly N.
func (r *SqlxRepository) GetForRead(ctx context.Context, id uuid.UUID) (models.Post, error) {
	getCmd := `
	UPDATE posts p
	SET views = views + 1
	FROM users u
	WHERE p.id = $1 AND u.id = p.author_id
	RETURNING ` + postColumns + `;`

	var post models.Post
	err := sqlxutils.Get(ctx, r.db, &post, getCmd, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, pkgErrors.ErrPostNotFound
		}

		r.logger.Error("get post for read", slog.String("error", err.Error()))
		return models.Post{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return post, nil
}

func (r *SqlxRepository) List(ctx context.Context, filter usecase.ListFilter) ([]models.Post, int, error) {
	where, args := buildListWhere(filter)

	countCmd := `SELECT COUNT(*) FROM posts p` + where + `;`

	var total int
	err := sqlxutils.Get(ctx, r.db, &total, countCmd, args...)
	if err != nil {
		r.logger.Error("count posts", slog.String("error", err.Error()))
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	args = append(args, filter.Limit, filter.Offset)
	listCmd := fmt.Sprintf(`
	SELECT `+postColumns+`
	FROM posts p
	JOIN users u ON u.id = p.author_id
	%s
	ORDER BY p.%s %s
	LIMIT $%d OFFSET $%d;`, where, filter.SortBy, direction, len(args)-1, len(args))

	posts := make([]models.Post, 0)
	err = sqlxutils.Select(ctx, r.db, &posts, listCmd, args...)
	if err != nil {
		r.logger.Error("list posts", slog.String("error", err.Error()))
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return posts, total, nil
}

func (r *SqlxRepository) Update(ctx context.Context, id uuid.UUID, fields usecase.UpdateFields) (models.Post, error) {
	updateCmd := `
	UPDATE posts p
	SET title = $2, body = $3, tags = $4, category = $5, updated_at = now()
	FROM users u
	WHERE p.id = $1 AND u.id = p.author_id
	RETURNING ` + postColumns + `;`

	var post models.Post
	err := sqlxutils.Get(ctx, r.db, &post, updateCmd,
		id, fields.Title, fields.Body, pq.StringArray(fields.Tags), fields.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, pkgErrors.ErrPostNotFound
		}

		r.logger.Error("update post", slog.String("error", err.Error()))
		return models.Post{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return post, nil
}

// Delete removes a post permanently. Its comments are left in place.
func (r *SqlxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteCmd = `DELETE FROM posts WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error("delete post", slog.String("error", err.Error()))
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrPostNotFound
	}

	return nil
}

func (r *SqlxRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const existsCmd = `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1);`

	var exists bool
	err := sqlxutils.Get(ctx, r.db, &exists, existsCmd, id)
	if err != nil {
		r.logger.Error("check post exists", slog.String("error", err.Error()))
		return false, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return exists, nil
}

func buildListWhere(filter usecase.ListFilter) (string, []interface{}) {
	conds := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY (p.tags)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.body ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), args
}
