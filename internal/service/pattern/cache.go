package pattern

import (
	"slices"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

// Cache memoizes the last Detect result until Invalidate is called.
// A disabled Cache recomputes on every call.
type Cache struct {
	enabled bool

	mu       sync.Mutex
	valid    bool
	patterns []domain.Pattern
}

// NewCache creates a Cache. When enabled is false it never memoizes.
func NewCache(enabled bool) *Cache {
	return &Cache{enabled: enabled}
}

// Patterns returns the memoized patterns, running Detect over load() on a miss.
func (c *Cache) Patterns(load func() []domain.FeedbackRecord) []domain.Pattern {
	if !c.enabled {
		return Detect(load())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		c.patterns = Detect(load())
		c.valid = true
	}
	return clonePatterns(c.patterns)
}

// Invalidate drops the memoized result.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.patterns = nil
	c.mu.Unlock()
}

func clonePatterns(in []domain.Pattern) []domain.Pattern {
	out := make([]domain.Pattern, len(in))
	for i, p := range in {
		p.Items = slices.Clone(p.Items)
		out[i] = p
	}
	return out
}
