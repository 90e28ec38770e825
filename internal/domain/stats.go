package domain

import "time"

// StatusCounts tallies feedback records by status.
type StatusCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// Stats is the administrative summary of both stores.
type Stats struct {
	TotalFeedback   int     `json:"totalFeedback"`
	TotalPulse      int     `json:"totalPulse"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	ResolutionRate  float64 `json:"resolutionRate"`
}

// Snapshot is the full export document.
type Snapshot struct {
	Feedback   []FeedbackRecord `json:"feedback"`
	Pulse      []PulseRecord    `json:"pulse"`
	ExportDate time.Time        `json:"exportDate"`
	Stats      Stats            `json:"stats"`
}
