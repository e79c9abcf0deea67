// Package postgres implements kv.Store on a pgx pool for deployments that
// want the data off the local disk. The contract is identical to the
// embedded store; the engine never knows the difference.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"secretarium/internal/config"
	"secretarium/internal/infrastructure/kv"
	"secretarium/internal/infrastructure/migration"
)

type Store struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	mg := migration.New("file://"+cfg.DB.Migrations, cfg.DB.DatabaseURI, nil)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &Store{
		pool: pool,
		log:  log.With("component", "postgres_store"),
	}, nil
}

func (s *Store) Collection(name string) kv.Collection {
	return &collection{pool: s.pool, name: name}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

type collection struct {
	pool *pgxpool.Pool
	name string
}

func (c *collection) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv WHERE collection = $1 AND key = $2`

	var value []byte
	err := c.pool.QueryRow(ctx, query, c.name, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", c.name, key, err)
	}
	return value, nil
}

func (c *collection) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (collection, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (collection, key) DO UPDATE SET value = excluded.value`

	if _, err := c.pool.Exec(ctx, query, c.name, key, value); err != nil {
		return fmt.Errorf("put %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE collection = $1 AND key = $2`

	if _, err := c.pool.Exec(ctx, query, c.name, key); err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) ForEach(ctx context.Context, fn func(key string, value []byte) error) error {
	const query = `SELECT key, value FROM kv WHERE collection = $1`

	rows, err := c.pool.Query(ctx, query, c.name)
	if err != nil {
		return fmt.Errorf("iterate %s: %w", c.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("iterate %s: %w", c.name, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return rows.Err()
}
