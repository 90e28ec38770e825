package pulse

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
)

type pulseStore interface {
	ListAll(ctx context.Context) []domain.PulseRecord
	Append(ctx context.Context, rec domain.PulseRecord) error
}

type recorder interface {
	PulseSubmitted()
}

// Service records weekly pulse checks.
type Service struct {
	store   pulseStore
	metrics recorder
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new Pulse service.
func NewService(log *slog.Logger, store pulseStore, metrics recorder) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		now:     time.Now,
		log:     log.With("service", "pulse"),
	}
}
