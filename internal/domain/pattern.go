package domain

// Pattern is a trend detected within a single feedback category.
type Pattern struct {
	Type     PatternType `json:"type"`
	Category Category    `json:"category"`
	Details  string      `json:"details"`
	Items    []string    `json:"items"`
}
