// Package badgerstore implements the slot backend on an embedded BadgerDB.
// Each slot is a single key under the "slot/" prefix.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/fixure/fixure-backend/internal/domain"
)

const keyPrefix = "slot/"

// Config configures the badger backend.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	InMemory bool

	SyncWrites bool

	// GCInterval is how often the value log is garbage collected.
	// Zero disables GC.
	GCInterval time.Duration

	// Logger receives badger's internal log output. Nil silences it.
	Logger *slog.Logger
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Backend stores slots in BadgerDB.
type Backend struct {
	db     *badger.DB
	log    *slog.Logger
	stopGC chan struct{}
	gcDone chan struct{}
	once   sync.Once
}

// Open opens (or creates) the database described by cfg.
func Open(cfg Config) (*Backend, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.With("component", "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	b := &Backend{db: db, log: log}

	if cfg.GCInterval > 0 && !cfg.InMemory {
		b.stopGC = make(chan struct{})
		b.gcDone = make(chan struct{})
		go b.runGC(cfg.GCInterval)
	}

	return b, nil
}

// Get returns the slot contents, or domain.ErrNotFound.
func (b *Backend) Get(_ context.Context, name string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("slot %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", name, err)
	}
	return out, nil
}

// Put overwrites the slot.
func (b *Backend) Put(_ context.Context, name string, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return fmt.Errorf("slot %s: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (b *Backend) Delete(_ context.Context, name string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(name))
	})
	if err != nil {
		return fmt.Errorf("slot %s: %w", name, err)
	}
	return nil
}

// Ping reports whether the database is still open.
func (b *Backend) Ping(context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger: database closed")
	}
	return nil
}

// Close stops GC and closes the database.
func (b *Backend) Close() error {
	b.once.Do(func() {
		if b.stopGC != nil {
			close(b.stopGC)
			<-b.gcDone
		}
	})
	return b.db.Close()
}

func (b *Backend) runGC(interval time.Duration) {
	defer close(b.gcDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopGC:
			return
		case <-ticker.C:
			err := b.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				b.log.Warn("badger value log GC error", slog.String("error", err.Error()))
			}
		}
	}
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}
