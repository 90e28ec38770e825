package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
)

type feedbackStore interface {
	ListAll(ctx context.Context) []domain.FeedbackRecord
	Append(ctx context.Context, rec domain.FeedbackRecord) error
	Replace(ctx context.Context, recs []domain.FeedbackRecord) error
	Clear(ctx context.Context) error
}

type pulseStore interface {
	ListAll(ctx context.Context) []domain.PulseRecord
	Append(ctx context.Context, rec domain.PulseRecord) error
	Replace(ctx context.Context, recs []domain.PulseRecord) error
	Clear(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	AdminOperation(op string)
}

// onChange is called after both stores were rewritten, so derived caches
// can be dropped.
type onChange func()

// Service implements the administrative operations over both stores.
type Service struct {
	feedback feedbackStore
	pulse    pulseStore
	tx       txManager
	metrics  recorder
	changed  onChange
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new Admin service. changed may be nil.
func NewService(
	log *slog.Logger,
	feedback feedbackStore,
	pulse pulseStore,
	tx txManager,
	metrics recorder,
	changed func(),
) *Service {
	if changed == nil {
		changed = func() {}
	}
	return &Service{
		feedback: feedback,
		pulse:    pulse,
		tx:       tx,
		metrics:  metrics,
		changed:  changed,
		now:      time.Now,
		log:      log.With("service", "admin"),
	}
}

// NoTx runs fn directly. It is used for backends without transactions.
type NoTx struct{}

// RunInTx calls fn with ctx unchanged.
func (NoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
