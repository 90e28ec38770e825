package admin

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fixure/fixure-backend/internal/domain"
)

// SeedMode selects whether sample data replaces or extends stored data.
type SeedMode string

const (
	SeedReplace SeedMode = "replace"
	SeedAppend  SeedMode = "append"
)

// ParseSeedMode maps "" to SeedReplace and rejects unknown modes.
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case "", SeedReplace:
		return SeedReplace, nil
	case SeedAppend:
		return SeedAppend, nil
	}
	return "", domain.NewValidationError("mode", "must be one of replace, append")
}

//go:embed sample.yaml
var sampleYAML []byte

type sampleFile struct {
	Feedback []sampleFeedback `yaml:"feedback"`
	Pulse    []samplePulse    `yaml:"pulse"`
}

type sampleFeedback struct {
	Category  string            `yaml:"category"`
	Role      string            `yaml:"role"`
	Feedback  string            `yaml:"feedback"`
	Priority  string            `yaml:"priority"`
	Status    string            `yaml:"status"`
	Age       time.Duration     `yaml:"age"`
	Solutions []domain.Solution `yaml:"solutions"`
}

type samplePulse struct {
	Age       time.Duration  `yaml:"age"`
	Responses map[string]int `yaml:"responses"`
}

// SampleData is the fixed demo set: five feedback and two pulse records.
type SampleData struct {
	Feedback []domain.FeedbackRecord
	Pulse    []domain.PulseRecord
}

// BuildSampleData materializes the embedded fixture relative to now.
func BuildSampleData(now time.Time) (SampleData, error) {
	var f sampleFile
	if err := yaml.Unmarshal(sampleYAML, &f); err != nil {
		return SampleData{}, fmt.Errorf("decode sample data: %w", err)
	}

	now = now.UTC().Truncate(time.Millisecond)
	base := now.UnixMilli()
	out := SampleData{
		Feedback: make([]domain.FeedbackRecord, 0, len(f.Feedback)),
		Pulse:    make([]domain.PulseRecord, 0, len(f.Pulse)),
	}

	n := int64(0)
	for _, s := range f.Feedback {
		n++
		solutions := s.Solutions
		if solutions == nil {
			solutions = []domain.Solution{}
		}
		out.Feedback = append(out.Feedback, domain.FeedbackRecord{
			ID:        base + n,
			Category:  domain.Category(s.Category),
			Role:      domain.Role(s.Role),
			Feedback:  s.Feedback,
			Priority:  domain.Priority(s.Priority),
			Timestamp: now.Add(-s.Age),
			Status:    domain.Status(s.Status),
			Solutions: solutions,
		})
	}
	for _, s := range f.Pulse {
		n++
		responses := make(domain.Responses, len(s.Responses))
		for dim, v := range s.Responses {
			responses[domain.Dimension(dim)] = v
		}
		ts := now.Add(-s.Age)
		out.Pulse = append(out.Pulse, domain.PulseRecord{
			ID:        base + n,
			Responses: responses,
			Timestamp: ts,
			Week:      domain.WeekOf(ts),
		})
	}

	return out, nil
}

// SeedSampleData writes the demo set. SeedReplace overwrites both stores;
// SeedAppend adds the records after the existing ones.
func (s *Service) SeedSampleData(ctx context.Context, mode SeedMode) (SampleData, error) {
	data, err := BuildSampleData(s.now())
	if err != nil {
		return SampleData{}, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if mode == SeedAppend {
			return s.appendSample(ctx, data)
		}
		if err := s.feedback.Replace(ctx, data.Feedback); err != nil {
			return fmt.Errorf("replace feedback: %w", err)
		}
		if err := s.pulse.Replace(ctx, data.Pulse); err != nil {
			return fmt.Errorf("replace pulse: %w", err)
		}
		return nil
	})
	if err != nil {
		return SampleData{}, err
	}

	s.changed()
	s.metrics.AdminOperation("seed")
	s.log.InfoContext(ctx, "sample data seeded",
		slog.String("mode", string(mode)),
		slog.Int("feedback", len(data.Feedback)),
		slog.Int("pulse", len(data.Pulse)),
	)

	return data, nil
}

func (s *Service) appendSample(ctx context.Context, data SampleData) error {
	for _, rec := range data.Feedback {
		if err := s.feedback.Append(ctx, rec); err != nil {
			return fmt.Errorf("append feedback: %w", err)
		}
	}
	for _, rec := range data.Pulse {
		if err := s.pulse.Append(ctx, rec); err != nil {
			return fmt.Errorf("append pulse: %w", err)
		}
	}
	return nil
}
