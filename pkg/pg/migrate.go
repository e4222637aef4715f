package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the embedded schema (the rate_limits table).
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate applies goose migrations over the pool. Without cfg.MigrationsPath
// the embedded migrations are used.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log logger) error {
	fsys, dir, err := migrationSource(cfg.MigrationsPath)
	if err != nil {
		return err
	}

	// goose speaks database/sql; share the pool's connections.
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}(db)

	return up(ctx, db, fsys, dir, cfg.MigrationsTable, log)
}

func migrationSource(path string) (fs.FS, string, error) {
	if path == "" {
		return Migrations(), ".", nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Join(ErrMigrationsDirNotFound, err)
		}
		return nil, "", errors.Join(ErrFailedToApplyMigrations, err)
	}
	return os.DirFS(path), ".", nil
}

func up(ctx context.Context, db *sql.DB, fsys fs.FS, dir, table string, log logger) error {
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	goose.SetLogger(newSlogAdapter(log))
	if table != "" {
		goose.SetTableName(table)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// migrateSlogAdapter routes goose output to the application logger.
type migrateSlogAdapter struct {
	log logger
}

func newSlogAdapter(log logger) goose.Logger {
	return &migrateSlogAdapter{log: log}
}

func (a *migrateSlogAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(context.Background(), fmt.Sprintf(format, v...))
}

func (a *migrateSlogAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(context.Background(), fmt.Sprintf(format, v...))
}
