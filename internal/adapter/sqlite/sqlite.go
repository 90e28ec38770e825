// Package sqlite implements the slot backend on a single-file SQLite
// database using the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/fixure/fixure-backend/internal/domain"
)

const table = "storage_slots"

const schema = `
CREATE TABLE IF NOT EXISTS storage_slots (
	name       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// runner is implemented by both *sql.DB and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// Backend stores slots as rows of the storage_slots table.
type Backend struct {
	db *sql.DB
}

// Open opens the database at path, creating the file, its directory and
// the schema when missing. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Backend, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		// Other processes may hold the file; wait for their locks instead
		// of failing with SQLITE_BUSY.
		dsn += "?_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Backend{db: db}, nil
}

func (b *Backend) runner(ctx context.Context) runner {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return b.db
}

// Get returns the slot contents, or domain.ErrNotFound.
func (b *Backend) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := sq.Select("payload").From(table).Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var payload string
	err = b.runner(ctx).QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", name, err)
	}
	return []byte(payload), nil
}

// Put inserts or overwrites the slot.
func (b *Backend) Put(ctx context.Context, name string, data []byte) error {
	query, args, err := sq.Insert(table).
		Columns("name", "payload", "updated_at").
		Values(name, string(data), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := b.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("slot %s: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (b *Backend) Delete(ctx context.Context, name string) error {
	query, args, err := sq.Delete(table).Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := b.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("slot %s: %w", name, err)
	}
	return nil
}

// RunInTx executes fn within a transaction. Slot operations made with the
// context passed to fn join it.
func (b *Backend) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (b *Backend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}
