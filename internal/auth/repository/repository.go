package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/auth/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/pkg/sqlxutils"
)

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

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (id, username, email, role, hashed_password)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, username, hashed_password, email, role, created_at, updated_at;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, createCmd,
		uuid.New(), params.Username, params.Email, params.Role, params.HashedPassword)
	if err != nil {
		r.logger.Error("create user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const getCmd = `
	SELECT id, username, hashed_password, email, role, created_at, updated_at
	FROM users
	WHERE id = $1;`

	return r.getOne(ctx, getCmd, id)
}

func (r *SqlxRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	const getCmd = `
	SELECT id, username, hashed_password, email, role, created_at, updated_at
	FROM users
	WHERE username = $1;`

	return r.getOne(ctx, getCmd, username)
}

func (r *SqlxRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const getCmd = `
	SELECT id, username, hashed_password, email, role, created_at, updated_at
	FROM users
	WHERE email = $1;`

	return r.getOne(ctx, getCmd, email)
}

func (r *SqlxRepository) getOne(ctx context.Context, query string, arg interface{}) (models.User, error) {
	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, pkgErrors.ErrUserNotFound
		}

		r.logger.Error("get user", slog.String("error", err.Error()))
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}
