package pulse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/aggregate"
)

// ListResult is every pulse record plus per-dimension averages.
type ListResult struct {
	Items    []domain.PulseRecord         `json:"items"`
	Averages map[domain.Dimension]float64 `json:"averages"`
}

// Submit validates the scores and appends a new pulse record.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.PulseRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.PulseRecord{}, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	rec := domain.PulseRecord{
		ID:        now.UnixMilli(),
		Responses: input.responses(),
		Timestamp: now,
		Week:      domain.WeekOf(now),
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return domain.PulseRecord{}, fmt.Errorf("append pulse: %w", err)
	}
	s.metrics.PulseSubmitted()

	s.log.InfoContext(ctx, "pulse submitted",
		slog.Int64("pulse_id", rec.ID),
		slog.String("week", rec.Week),
	)

	return rec, nil
}

// List returns all pulse records in submission order with their averages.
func (s *Service) List(ctx context.Context) ListResult {
	items := s.store.ListAll(ctx)
	return ListResult{
		Items:    items,
		Averages: aggregate.DimensionAverages(items),
	}
}

// Averages returns the mean score of every answered dimension.
func (s *Service) Averages(ctx context.Context) map[domain.Dimension]float64 {
	return aggregate.DimensionAverages(s.store.ListAll(ctx))
}
