// Package store persists feedback and pulse records as JSON sequences, one
// sequence per named slot of a slot backend.
//
// Reads fail soft: a missing or unparseable slot is treated as an empty
// sequence. Every mutation rewrites the full sequence. Mutations are
// serialized within the process; writers in other processes race with
// last-write-wins semantics.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

// Default slot names.
const (
	FeedbackSlot = "fixure_feedback"
	PulseSlot    = "fixure_pulse"
)

// Backend is a named-slot byte store. Get must return an error wrapping
// domain.ErrNotFound when the slot does not exist.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

// sequence is a JSON array of T kept in a single slot.
type sequence[T any] struct {
	backend Backend
	slot    string
	log     *slog.Logger
	mu      sync.Mutex
}

func newSequence[T any](backend Backend, slot string, log *slog.Logger) *sequence[T] {
	return &sequence[T]{
		backend: backend,
		slot:    slot,
		log:     log.With("slot", slot),
	}
}

// lock takes the write mutex unless ctx came from LockAll over this
// sequence, and returns the matching unlock.
func (s *sequence[T]) lock(ctx context.Context) func() {
	if isHeld(ctx, &s.mu) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *sequence[T]) writeMutex() *sync.Mutex { return &s.mu }

// list never fails: any read or decode problem yields an empty slice.
func (s *sequence[T]) list(ctx context.Context) []T {
	items, err := s.read(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "slot unreadable, treating as empty", slog.String("error", err.Error()))
		return []T{}
	}
	return items
}

// readForWrite is like list, but a backend failure aborts the write instead
// of silently replacing stored data with a one-element sequence.
// Unparseable contents still count as empty.
func (s *sequence[T]) readForWrite(ctx context.Context) ([]T, error) {
	data, err := s.backend.Get(ctx, s.slot)
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.slot, err)
	}
	items, err := decode[T](data)
	if err != nil {
		s.log.WarnContext(ctx, "slot unparseable, overwriting", slog.String("error", err.Error()))
		return []T{}, nil
	}
	return items, nil
}

func (s *sequence[T]) read(ctx context.Context) ([]T, error) {
	data, err := s.backend.Get(ctx, s.slot)
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

func (s *sequence[T]) write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", s.slot, err)
	}
	if err := s.backend.Put(ctx, s.slot, data); err != nil {
		return fmt.Errorf("write slot %s: %w", s.slot, err)
	}
	return nil
}

func (s *sequence[T]) add(ctx context.Context, item T) error {
	defer s.lock(ctx)()

	items, err := s.readForWrite(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, append(items, item))
}

func (s *sequence[T]) replace(ctx context.Context, items []T) error {
	defer s.lock(ctx)()

	return s.write(ctx, items)
}

func (s *sequence[T]) drop(ctx context.Context) error {
	defer s.lock(ctx)()

	if err := s.backend.Delete(ctx, s.slot); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear slot %s: %w", s.slot, err)
	}
	return nil
}

func decode[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
