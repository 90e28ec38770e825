package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

// FeedbackStore holds every feedback record in one slot.
type FeedbackStore struct {
	seq *sequence[domain.FeedbackRecord]
}

// NewFeedbackStore creates a FeedbackStore over the given slot.
func NewFeedbackStore(backend Backend, slot string, log *slog.Logger) *FeedbackStore {
	return &FeedbackStore{seq: newSequence[domain.FeedbackRecord](backend, slot, log)}
}

// ListAll returns all records in insertion order.
func (s *FeedbackStore) ListAll(ctx context.Context) []domain.FeedbackRecord {
	return s.seq.list(ctx)
}

// Append adds one record to the end of the sequence. Ids are not checked
// for uniqueness.
func (s *FeedbackStore) Append(ctx context.Context, rec domain.FeedbackRecord) error {
	return s.seq.add(ctx, rec)
}

// Update replaces the first record whose id matches with mutate's result.
// When no record matches nothing is written and found is false.
func (s *FeedbackStore) Update(
	ctx context.Context,
	id int64,
	mutate func(domain.FeedbackRecord) domain.FeedbackRecord,
) (updated domain.FeedbackRecord, found bool, err error) {
	defer s.seq.lock(ctx)()

	items, err := s.seq.readForWrite(ctx)
	if err != nil {
		return domain.FeedbackRecord{}, false, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i] = mutate(items[i].Clone())
		if err := s.seq.write(ctx, items); err != nil {
			return domain.FeedbackRecord{}, false, err
		}
		return items[i], true, nil
	}

	return domain.FeedbackRecord{}, false, nil
}

// Replace overwrites the whole sequence.
func (s *FeedbackStore) Replace(ctx context.Context, recs []domain.FeedbackRecord) error {
	return s.seq.replace(ctx, recs)
}

// Clear empties the sequence.
func (s *FeedbackStore) Clear(ctx context.Context) error {
	return s.seq.drop(ctx)
}

func (s *FeedbackStore) writeMutex() *sync.Mutex { return s.seq.writeMutex() }
