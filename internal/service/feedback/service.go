package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
)

type feedbackStore interface {
	ListAll(ctx context.Context) []domain.FeedbackRecord
	Append(ctx context.Context, rec domain.FeedbackRecord) error
	Update(ctx context.Context, id int64, mutate func(domain.FeedbackRecord) domain.FeedbackRecord) (domain.FeedbackRecord, bool, error)
}

type patternCache interface {
	Patterns(load func() []domain.FeedbackRecord) []domain.Pattern
	Invalidate()
}

type recorder interface {
	FeedbackSubmitted(category, priority string)
	StatusChanged(status string)
	SolutionAdded()
}

// suggestions is the fixed list of follow-up ideas shown next to a record.
var suggestions = []string{
	"Schedule a dedicated brainstorming session with the involved team members.",
	"Conduct a survey to gather more quantitative data on this issue.",
	"Review existing company policies related to this feedback.",
	"Implement a pilot program to test a potential solution on a small scale.",
	"Create a shared document for transparent tracking of progress on this issue.",
}

// Service provides feedback submission, listing and triage.
type Service struct {
	store   feedbackStore
	cache   patternCache
	metrics recorder
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new Feedback service.
func NewService(
	log *slog.Logger,
	store feedbackStore,
	cache patternCache,
	metrics recorder,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		metrics: metrics,
		now:     time.Now,
		log:     log.With("service", "feedback"),
	}
}

// Suggestions returns the static follow-up suggestions.
func (s *Service) Suggestions() []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// InvalidatePatterns drops cached patterns, e.g. after another process
// changed the feedback slot.
func (s *Service) InvalidatePatterns() {
	s.cache.Invalidate()
}
