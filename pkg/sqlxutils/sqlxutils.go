package sqlxutils

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func Select(ctx context.Context, db *sqlx.DB, dest interface{}, query string, args ...interface{}) error {
	return db.SelectContext(ctx, dest, query, args...)
}

func Get(ctx context.Context, db *sqlx.DB, dest interface{}, query string, args ...interface{}) error {
	return db.GetContext(ctx, dest, query, args...)
}
