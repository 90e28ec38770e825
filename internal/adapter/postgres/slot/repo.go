// Package slot implements the named-slot storage backend on PostgreSQL.
// Every slot is one row of the storage_slots table.
package slot

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/fixure/fixure-backend/internal/adapter/postgres"
)

const table = "storage_slots"

// Repo provides slot persistence backed by PostgreSQL.
type Repo struct {
	db   postgres.DB
	psql sq.StatementBuilderType
}

// New creates a new slot repository.
func New(db postgres.DB) *Repo {
	return &Repo{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the payload stored under name.
// Returns domain.ErrNotFound if the slot has never been written.
func (r *Repo) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := r.psql.
		Select("payload").
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var payload string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		return nil, postgres.MapError(err, "slot", name)
	}
	return []byte(payload), nil
}

// Put inserts or overwrites the slot.
func (r *Repo) Put(ctx context.Context, name string, data []byte) error {
	query, args, err := r.psql.
		Insert(table).
		Columns("name", "payload", "updated_at").
		Values(name, string(data), sq.Expr("now()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "slot", name)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *Repo) Delete(ctx context.Context, name string) error {
	query, args, err := r.psql.
		Delete(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "slot", name)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
