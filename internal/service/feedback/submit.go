package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
)

// Submit validates the form and appends a new pending record. The text is
// stored verbatim; the id is the creation time in Unix milliseconds.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.FeedbackRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.FeedbackRecord{}, err
	}

	priority := domain.Priority(input.Priority)
	if priority == "" {
		priority = domain.DefaultPriority
	}

	now := s.now().UTC()
	rec := domain.FeedbackRecord{
		ID:        now.UnixMilli(),
		Category:  domain.Category(input.Category),
		Role:      domain.Role(input.Role),
		Feedback:  input.Feedback,
		Priority:  priority,
		Timestamp: now.Truncate(time.Millisecond),
		Status:    domain.StatusPending,
		Solutions: []domain.Solution{},
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return domain.FeedbackRecord{}, fmt.Errorf("append feedback: %w", err)
	}
	s.cache.Invalidate()
	s.metrics.FeedbackSubmitted(rec.Category.String(), rec.Priority.String())

	s.log.InfoContext(ctx, "feedback submitted",
		slog.Int64("feedback_id", rec.ID),
		slog.String("category", rec.Category.String()),
		slog.String("priority", rec.Priority.String()),
	)

	return rec, nil
}
