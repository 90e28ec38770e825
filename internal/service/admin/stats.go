package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/aggregate"
)

// Stats summarizes both stores.
func (s *Service) Stats(ctx context.Context) domain.Stats {
	return aggregate.Summarize(s.feedback.ListAll(ctx), s.pulse.ListAll(ctx))
}

// Export returns the full contents of both stores plus their summary,
// stamped with the current time.
func (s *Service) Export(ctx context.Context) domain.Snapshot {
	feedback := s.feedback.ListAll(ctx)
	pulse := s.pulse.ListAll(ctx)
	snap := domain.Snapshot{
		Feedback:   feedback,
		Pulse:      pulse,
		ExportDate: s.now().UTC().Truncate(time.Millisecond),
		Stats:      aggregate.Summarize(feedback, pulse),
	}
	s.metrics.AdminOperation("export")
	return snap
}

// SnapshotFilename is the download name of an export taken at t.
func SnapshotFilename(t time.Time) string {
	return "fixure-data-" + t.UTC().Format(time.DateOnly) + ".json"
}

// EncodeSnapshot renders snap as JSON indented by two spaces.
func EncodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
