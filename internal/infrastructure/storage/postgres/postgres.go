package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"safewatch/internal/config"
	"safewatch/internal/infrastructure/migration"
)

// Storage keeps the key-value pairs in the kv table created by migrations/.
type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New connects to cfg.DatabaseURI and applies pending migrations with engine.
// A nil engine means migration.DefaultEngine.
func New(ctx context.Context, cfg config.Storage, engine migration.MigrationEngine, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := migration.NewMigration(cfg, engine).Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{
		pool: pool,
		log:  log.With("component", "postgres_kv"),
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv WHERE key = $1`

	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.log.Error("failed to get key", "key", key, "error", err)
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}

	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.log.Error("failed to set key", "key", key, "error", err)
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	const query = `DELETE FROM kv WHERE key = ANY($1)`

	if _, err := s.pool.Exec(ctx, query, keys); err != nil {
		s.log.Error("failed to delete keys", "keys", keys, "error", err)
		return fmt.Errorf("delete keys: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
