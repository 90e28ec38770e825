// Package aggregate computes dashboard statistics over feedback and pulse
// records. Every function is pure.
package aggregate

import (
	"math"

	"github.com/fixure/fixure-backend/internal/domain"
)

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ResolutionRate returns the percentage of resolved records, or 0 when
// there are none.
func ResolutionRate(feedback []domain.FeedbackRecord) float64 {
	if len(feedback) == 0 {
		return 0
	}
	resolved := 0
	for _, f := range feedback {
		if f.Status == domain.StatusResolved {
			resolved++
		}
	}
	return round1(float64(resolved) / float64(len(feedback)) * 100)
}

// AverageSatisfaction returns the mean satisfaction score over all pulse
// records, or 0 when there are none. Records missing the dimension count
// as 0.
func AverageSatisfaction(pulse []domain.PulseRecord) float64 {
	if len(pulse) == 0 {
		return 0
	}
	sum := 0
	for _, p := range pulse {
		score, _ := p.Responses.Score(domain.DimensionSatisfaction)
		sum += score
	}
	return round1(float64(sum) / float64(len(pulse)))
}

// DimensionAverages returns the mean of every dimension over the records
// that answered it. Dimensions nobody answered are omitted.
func DimensionAverages(pulse []domain.PulseRecord) map[domain.Dimension]float64 {
	out := make(map[domain.Dimension]float64, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		sum, n := 0, 0
		for _, p := range pulse {
			if score, ok := p.Responses.Score(d); ok {
				sum += score
				n++
			}
		}
		if n > 0 {
			out[d] = round1(float64(sum) / float64(n))
		}
	}
	return out
}

// Filter returns the records matching f, preserving order. The result is
// never nil.
func Filter(feedback []domain.FeedbackRecord, f domain.FeedbackFilter) []domain.FeedbackRecord {
	out := []domain.FeedbackRecord{}
	for _, r := range feedback {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// StatusCounts tallies records by status. Unknown statuses count towards
// the total only.
func StatusCounts(feedback []domain.FeedbackRecord) domain.StatusCounts {
	c := domain.StatusCounts{Total: len(feedback)}
	for _, f := range feedback {
		switch f.Status {
		case domain.StatusPending:
			c.Pending++
		case domain.StatusInProgress:
			c.InProgress++
		case domain.StatusResolved:
			c.Resolved++
		}
	}
	return c
}

// Categories lists the distinct categories present, in first-seen order.
func Categories(feedback []domain.FeedbackRecord) []domain.Category {
	out := []domain.Category{}
	seen := make(map[domain.Category]bool)
	for _, f := range feedback {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}

// Summarize builds the administrative statistics for both stores.
func Summarize(feedback []domain.FeedbackRecord, pulse []domain.PulseRecord) domain.Stats {
	return domain.Stats{
		TotalFeedback:   len(feedback),
		TotalPulse:      len(pulse),
		AvgSatisfaction: AverageSatisfaction(pulse),
		ResolutionRate:  ResolutionRate(feedback),
	}
}
