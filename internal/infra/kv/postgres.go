package kv

import (
	"context"
	"errors"

	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the same key/JSON layout in a single JSONB table for
// deployments where an embedded store won't do (multiple instances, managed
// backups).
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv_items (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func NewPostgresStore(ctx context.Context, cfg config.StorageConfig) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to create postgres pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ping postgres")
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ensure kv_items table")
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_items WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "postgres get failed")
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_items (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return errs.Wrap(err, "postgres set failed")
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_items WHERE key = $1`, key)
	if err != nil {
		return errs.Wrap(err, "postgres delete failed")
	}
	return nil
}

func (s *PostgresStore) ListPrefix(ctx context.Context, prefix string) (map[string][]byte, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM kv_items WHERE key LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, errs.Wrap(err, "postgres prefix scan failed")
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errs.Wrap(err, "postgres prefix scan failed")
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "postgres prefix scan failed")
	}
	return result, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
