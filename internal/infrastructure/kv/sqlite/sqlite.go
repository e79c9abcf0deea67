// Package sqlite is the default embedded kv.Store: one table keyed by
// (collection, key), values stored as opaque blobs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"secretarium/internal/config"
	"secretarium/internal/infrastructure/kv"
	"secretarium/internal/infrastructure/migration"
)

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*Store, error) {
	path := cfg.DB.DatabaseURI
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	mg := migration.New("file://"+cfg.DB.Migrations, "sqlite3://"+path, nil)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection serializes writers; readers queue behind the busy
	// timeout instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	return &Store{
		db:  db,
		log: log.With("component", "sqlite_store"),
	}, nil
}

func (s *Store) Collection(name string) kv.Collection {
	return &collection{db: s.db, name: name}
}

func (s *Store) Close() error {
	return s.db.Close()
}

type collection struct {
	db   *sql.DB
	name string
}

func (c *collection) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv WHERE collection = ? AND key = ?`

	var value []byte
	err := c.db.QueryRowContext(ctx, query, c.name, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", c.name, key, err)
	}
	return value, nil
}

func (c *collection) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (collection, key, value) VALUES (?, ?, ?)
		ON CONFLICT (collection, key) DO UPDATE SET value = excluded.value`

	if _, err := c.db.ExecContext(ctx, query, c.name, key, value); err != nil {
		return fmt.Errorf("put %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE collection = ? AND key = ?`

	if _, err := c.db.ExecContext(ctx, query, c.name, key); err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, key, err)
	}
	return nil
}

func (c *collection) ForEach(ctx context.Context, fn func(key string, value []byte) error) error {
	const query = `SELECT key, value FROM kv WHERE collection = ?`

	rows, err := c.db.QueryContext(ctx, query, c.name)
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
