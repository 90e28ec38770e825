package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

// PulseStore holds every pulse record in one slot. Records are never
// updated individually.
type PulseStore struct {
	seq *sequence[domain.PulseRecord]
}

// NewPulseStore creates a PulseStore over the given slot.
func NewPulseStore(backend Backend, slot string, log *slog.Logger) *PulseStore {
	return &PulseStore{seq: newSequence[domain.PulseRecord](backend, slot, log)}
}

// ListAll returns all records in insertion order.
func (s *PulseStore) ListAll(ctx context.Context) []domain.PulseRecord {
	return s.seq.list(ctx)
}

// Append adds one record to the end of the sequence.
func (s *PulseStore) Append(ctx context.Context, rec domain.PulseRecord) error {
	return s.seq.add(ctx, rec)
}

// Replace overwrites the whole sequence.
func (s *PulseStore) Replace(ctx context.Context, recs []domain.PulseRecord) error {
	return s.seq.replace(ctx, recs)
}

// Clear empties the sequence.
func (s *PulseStore) Clear(ctx context.Context) error {
	return s.seq.drop(ctx)
}

func (s *PulseStore) writeMutex() *sync.Mutex { return s.seq.writeMutex() }
