// Package memory implements an in-process slot backend. Contents are lost
// when the process exits; it backs tests and the "memory" storage driver.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

// Backend keeps slots in a map guarded by a RWMutex.
type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

// Get returns a copy of the slot contents, or domain.ErrNotFound.
func (b *Backend) Get(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.slots[name]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", name, domain.ErrNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores a copy of data under name.
func (b *Backend) Put(_ context.Context, name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	b.mu.Lock()
	b.slots[name] = buf
	b.mu.Unlock()
	return nil
}

// Delete removes a slot. Deleting a missing slot is not an error.
func (b *Backend) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	delete(b.slots, name)
	b.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (b *Backend) Ping(context.Context) error { return nil }

// Close is a no-op; it exists so every backend can be closed uniformly.
func (b *Backend) Close() error { return nil }
