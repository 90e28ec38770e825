// Package pattern detects simple feedback trends per category.
package pattern

import (
	"fmt"
	"slices"

	"github.com/fixure/fixure-backend/internal/domain"
)

const (
	// VolumeThreshold is the item count at which a category emits a Volume pattern.
	VolumeThreshold = 3
	// UrgencyThreshold is the high/urgent item count at which a category
	// emits an Urgency pattern.
	UrgencyThreshold = 2
)

type tally struct {
	category domain.Category
	total    int
	elevated int
	items    []string
}

// Detect groups feedback by category in first-seen order and emits, per
// category, a Volume pattern when it has at least VolumeThreshold items and
// an Urgency pattern when at least UrgencyThreshold of them are high or
// urgent. The result is never nil.
func Detect(feedback []domain.FeedbackRecord) []domain.Pattern {
	var order []*tally
	byCategory := make(map[domain.Category]*tally)

	for _, f := range feedback {
		t, ok := byCategory[f.Category]
		if !ok {
			t = &tally{category: f.Category}
			byCategory[f.Category] = t
			order = append(order, t)
		}
		t.total++
		if f.Priority.IsElevated() {
			t.elevated++
		}
		t.items = append(t.items, f.Feedback)
	}

	patterns := []domain.Pattern{}
	for _, t := range order {
		if t.total >= VolumeThreshold {
			patterns = append(patterns, domain.Pattern{
				Type:     domain.PatternVolume,
				Category: t.category,
				Details:  fmt.Sprintf("High volume of feedback (%d items) in the %q category.", t.total, t.category),
				Items:    slices.Clone(t.items),
			})
		}
		if t.elevated >= UrgencyThreshold {
			patterns = append(patterns, domain.Pattern{
				Type:     domain.PatternUrgency,
				Category: t.category,
				Details:  fmt.Sprintf("Multiple high-priority issues (%d items) in the %q category.", t.elevated, t.category),
				Items:    slices.Clone(t.items),
			})
		}
	}
	return patterns
}
