package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"scholartrack/internal/dbx"
	"scholartrack/internal/localstore/migrations"
)

// RunMigrations applies the embedded kv migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the local database at dsn, runs
// migrations, and returns the handle together with a Store bound to it.
func Open(ctx context.Context, dsn string) (*sql.DB, *SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, NewSQLiteStore(db), nil
}

// WithinTx runs fn with a Store bound to a single transaction. Writers
// that must land several keys atomically use this instead of the plain
// Store; fn returning an error rolls every write back.
func WithinTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, store Store) error) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteStore(tx))
	})
}
