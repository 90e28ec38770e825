package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fixure/fixure-backend/internal/domain"
)

// UpdateStatus sets the status of the first record with the given id.
// An unknown id is not an error: found is false and nothing is written.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (rec domain.FeedbackRecord, found bool, err error) {
	if err := input.Validate(); err != nil {
		return domain.FeedbackRecord{}, false, err
	}

	status := domain.Status(input.Status)
	rec, found, err = s.store.Update(ctx, input.ID, func(r domain.FeedbackRecord) domain.FeedbackRecord {
		return r.WithStatus(status)
	})
	if err != nil {
		return domain.FeedbackRecord{}, false, fmt.Errorf("update feedback status: %w", err)
	}
	if !found {
		s.log.DebugContext(ctx, "status update for unknown feedback ignored", slog.Int64("feedback_id", input.ID))
		return domain.FeedbackRecord{}, false, nil
	}

	s.cache.Invalidate()
	s.metrics.StatusChanged(status.String())

	s.log.InfoContext(ctx, "feedback status updated",
		slog.Int64("feedback_id", input.ID),
		slog.String("status", status.String()),
	)

	return rec, true, nil
}

// AddSolution appends a solution to the first record with the given id.
// The text is stored verbatim; the author defaults to "Team". An unknown id
// is not an error: found is false and nothing is written.
func (s *Service) AddSolution(ctx context.Context, input AddSolutionInput) (rec domain.FeedbackRecord, found bool, err error) {
	if err := input.Validate(); err != nil {
		return domain.FeedbackRecord{}, false, err
	}

	sol := domain.Solution{Text: input.Text, Author: input.author()}
	rec, found, err = s.store.Update(ctx, input.ID, func(r domain.FeedbackRecord) domain.FeedbackRecord {
		return r.WithSolution(sol)
	})
	if err != nil {
		return domain.FeedbackRecord{}, false, fmt.Errorf("add solution: %w", err)
	}
	if !found {
		s.log.DebugContext(ctx, "solution for unknown feedback ignored", slog.Int64("feedback_id", input.ID))
		return domain.FeedbackRecord{}, false, nil
	}

	s.cache.Invalidate()
	s.metrics.SolutionAdded()

	s.log.InfoContext(ctx, "solution added",
		slog.Int64("feedback_id", input.ID),
		slog.Int("solutions", len(rec.Solutions)),
	)

	return rec, true, nil
}
