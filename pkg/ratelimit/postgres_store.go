package ratelimit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/formguard/pkg/pg"
)

// DefaultTable is the table created by the pg package migrations.
const DefaultTable = "rate_limits"

// Querier is the subset of *pgxpool.Pool and pgx.Conn used by PostgresStore.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps records in a (key, value, updated_at) table.
type PostgresStore struct {
	db        Querier
	selectSQL string
	upsertSQL string
}

// NewPostgresStore returns a store over table, DefaultTable when empty.
func NewPostgresStore(db Querier, table string) (*PostgresStore, error) {
	if db == nil {
		return nil, ErrStoreRequired
	}
	if table == "" {
		table = DefaultTable
	}
	ident := pgx.Identifier{table}.Sanitize()

	return &PostgresStore{
		db:        db,
		selectSQL: fmt.Sprintf("SELECT value FROM %s WHERE key = $1", ident),
		upsertSQL: fmt.Sprintf(
			"INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now()) "+
				"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()",
			ident,
		),
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, s.selectSQL, key).Scan(&value)
	if pg.IsNotFoundError(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, s.upsertSQL, key, value)
	return err
}
