package admin

import (
	"context"
	"fmt"

	"github.com/fixure/fixure-backend/internal/domain"
)

// ClearAll empties both stores. Without confirmation it returns
// domain.ErrConfirmationRequired and changes nothing.
func (s *Service) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("clear all data: %w", domain.ErrConfirmationRequired)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.feedback.Clear(ctx); err != nil {
			return fmt.Errorf("clear feedback: %w", err)
		}
		if err := s.pulse.Clear(ctx); err != nil {
			return fmt.Errorf("clear pulse: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.changed()
	s.metrics.AdminOperation("clear")
	s.log.WarnContext(ctx, "all feedback and pulse data cleared")

	return nil
}
