package feedback

import (
	"context"
	"fmt"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/aggregate"
	"github.com/fixure/fixure-backend/internal/service/pattern"
)

// ListResult is a filtered feedback list with its status tallies.
type ListResult struct {
	Items  []domain.FeedbackRecord `json:"items"`
	Counts domain.StatusCounts     `json:"counts"`
}

// DashboardResult is everything the triage dashboard renders.
// Patterns and Categories are computed over all feedback, not the
// filtered items, and always from the same read as Items.
type DashboardResult struct {
	Items       []domain.FeedbackRecord `json:"items"`
	Counts      domain.StatusCounts     `json:"counts"`
	Patterns    []domain.Pattern        `json:"patterns"`
	Categories  []domain.Category       `json:"categories"`
	Suggestions []string                `json:"suggestions"`
}

// List returns the records matching input and their status counts.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	items := aggregate.Filter(s.store.ListAll(ctx), input.filter())
	return ListResult{
		Items:  items,
		Counts: aggregate.StatusCounts(items),
	}, nil
}

// Dashboard returns the filtered list plus patterns, category options and
// suggestions.
func (s *Service) Dashboard(ctx context.Context, input ListInput) (DashboardResult, error) {
	if err := input.Validate(); err != nil {
		return DashboardResult{}, err
	}

	all := s.store.ListAll(ctx)
	items := aggregate.Filter(all, input.filter())

	return DashboardResult{
		Items:       items,
		Counts:      aggregate.StatusCounts(items),
		Patterns:    pattern.Detect(all),
		Categories:  aggregate.Categories(all),
		Suggestions: s.Suggestions(),
	}, nil
}

// Get returns the first record with the given id.
// Returns domain.ErrNotFound when there is none.
func (s *Service) Get(ctx context.Context, id int64) (domain.FeedbackRecord, error) {
	for _, r := range s.store.ListAll(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.FeedbackRecord{}, fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
}

// Patterns returns the patterns detected over all feedback.
func (s *Service) Patterns(ctx context.Context) []domain.Pattern {
	return s.cache.Patterns(func() []domain.FeedbackRecord { return s.store.ListAll(ctx) })
}
