// Package filestore implements the slot backend as one JSON file per slot
// in a directory. Writes are atomic (temp file then rename). Watch reports
// slots changed by other processes sharing the directory.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fixure/fixure-backend/internal/domain"
)

const (
	fileExt       = ".json"
	tempPattern   = ".slot-*.tmp"
	debounceDelay = 100 * time.Millisecond
)

// ownWrite is the last state this process left a slot in.
type ownWrite struct {
	data    []byte
	deleted bool
}

// Backend stores each slot as <dir>/<name>.json.
type Backend struct {
	dir string
	log *slog.Logger

	mu  sync.Mutex
	own map[string]ownWrite
}

// Open prepares dir for use, creating it when missing.
func Open(dir string, log *slog.Logger) (*Backend, error) {
	if dir == "" {
		return nil, errors.New("filestore: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory %s: %w", dir, err)
	}
	return &Backend{
		dir: dir,
		log: log.With("component", "filestore"),
		own: make(map[string]ownWrite),
	}, nil
}

func (b *Backend) path(name string) string {
	return filepath.Join(b.dir, name+fileExt)
}

// Get returns the slot contents, or domain.ErrNotFound.
func (b *Backend) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("slot %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", name, err)
	}
	return data, nil
}

// Put atomically replaces the slot file.
func (b *Backend) Put(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tmp, err := os.CreateTemp(b.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("slot %s: create temp file: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("slot %s: write temp file: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("slot %s: sync temp file: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("slot %s: close temp file: %w", name, err)
	}
	if err := os.Rename(tmpName, b.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("slot %s: rename: %w", name, err)
	}

	b.own[name] = ownWrite{data: bytes.Clone(data)}
	return nil
}

// Delete removes the slot file. Deleting a missing slot is not an error.
func (b *Backend) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(b.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("slot %s: %w", name, err)
	}
	b.own[name] = ownWrite{deleted: true}
	return nil
}

// Ping checks that the directory is still accessible.
func (b *Backend) Ping(context.Context) error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return fmt.Errorf("filestore: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("filestore: %s is not a directory", b.dir)
	}
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }

// Watch blocks until ctx is cancelled, calling onChange with the slot name
// whenever a slot file changes to something this process did not write.
// Bursts of events are coalesced.
func (b *Backend) Watch(ctx context.Context, onChange func(slot string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(b.dir); err != nil {
		return fmt.Errorf("watch %s: %w", b.dir, err)
	}
	b.log.InfoContext(ctx, "watching storage directory", slog.String("dir", b.dir))

	ticker := time.NewTicker(debounceDelay)
	defer ticker.Stop()

	pending := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name, ok := slotName(event.Name); ok && event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				pending[name] = struct{}{}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.log.WarnContext(ctx, "watcher error", slog.String("error", err.Error()))
		case <-ticker.C:
			for name := range pending {
				delete(pending, name)
				if b.changedExternally(name) {
					b.log.DebugContext(ctx, "slot changed externally", slog.String("slot", name))
					onChange(name)
				}
			}
		}
	}
}

// changedExternally reports whether the slot file differs from the last
// state this process wrote.
func (b *Backend) changedExternally(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	own, ok := b.own[name]
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return !(ok && own.deleted)
	}
	if err != nil {
		return true
	}
	return !ok || own.deleted || !bytes.Equal(own.data, data)
}

func slotName(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, fileExt) {
		return "", false
	}
	return strings.TrimSuffix(base, fileExt), true
}
