package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fixure/fixure-backend/internal/adapter/badgerstore"
	"github.com/fixure/fixure-backend/internal/adapter/filestore"
	"github.com/fixure/fixure-backend/internal/adapter/memory"
	"github.com/fixure/fixure-backend/internal/adapter/postgres"
	"github.com/fixure/fixure-backend/internal/adapter/postgres/slot"
	"github.com/fixure/fixure-backend/internal/adapter/sqlite"
	"github.com/fixure/fixure-backend/internal/config"
	"github.com/fixure/fixure-backend/internal/service/admin"
	"github.com/fixure/fixure-backend/internal/store"
	"github.com/fixure/fixure-backend/migrations"
)

// sqliteFile is the database file name inside Storage.Path.
const sqliteFile = "fixure.db"

type slotBackend interface {
	store.Backend
	Ping(ctx context.Context) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage is the opened slot backend plus what the rest of the app needs
// from it: a transaction runner, an optional change watcher and cleanup.
type Storage struct {
	Driver  string
	Backend slotBackend
	Tx      txRunner

	// Watcher is set for the file driver when watching is enabled.
	Watcher *filestore.Backend

	closers []func() error
}

// Ping checks the backend is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.Backend.Ping(ctx)
}

// SeesAllWrites reports whether every write to the backend passes through
// this process or is reported by the watcher. Memory is private to the
// process and badger holds an exclusive directory lock; sqlite, postgres
// and an unwatched file directory can be written by others unnoticed.
func (s *Storage) SeesAllWrites() bool {
	switch s.Driver {
	case config.DriverMemory, config.DriverBadger:
		return true
	}
	return s.Watcher != nil
}

// Close releases the backend in reverse order of acquisition.
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenStorage opens the backend selected by cfg.Storage.Driver.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	s := &Storage{Driver: cfg.Storage.Driver, Tx: admin.NoTx{}}
	log = log.With("storage", s.Driver)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		s.Backend = memory.New()

	case config.DriverFile:
		b, err := filestore.Open(cfg.Storage.Path, log)
		if err != nil {
			return nil, err
		}
		s.Backend = b
		if cfg.Storage.Watch {
			s.Watcher = b
		}

	case config.DriverBadger:
		b, err := badgerstore.Open(badgerstore.Config{
			Path:       cfg.Storage.Path,
			SyncWrites: cfg.Storage.SyncWrites,
			GCInterval: cfg.Storage.GCInterval,
			Logger:     log,
		})
		if err != nil {
			return nil, err
		}
		s.Backend = b
		s.closers = append(s.closers, b.Close)

	case config.DriverSQLite:
		b, err := sqlite.Open(ctx, filepath.Join(cfg.Storage.Path, sqliteFile))
		if err != nil {
			return nil, err
		}
		s.Backend = b
		s.Tx = b
		s.closers = append(s.closers, b.Close)

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, log); err != nil {
				_ = s.Close()
				return nil, err
			}
		}
		s.Backend = slot.New(pool)
		s.Tx = postgres.NewTxManager(pool)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	log.Info("storage opened", slog.String("path", storagePath(cfg)))
	return s, nil
}

func storagePath(cfg *config.Config) string {
	switch cfg.Storage.Driver {
	case config.DriverMemory, config.DriverPostgres:
		return ""
	}
	return cfg.Storage.Path
}
