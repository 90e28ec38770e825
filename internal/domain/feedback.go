package domain

import (
	"encoding/json"
	"time"
)

// DefaultSolutionAuthor is recorded when a solution is added without an author.
const DefaultSolutionAuthor = "Team"

// FeedbackRecord is one anonymous feedback submission.
type FeedbackRecord struct {
	ID        int64      `json:"id"`
	Category  Category   `json:"category"`
	Role      Role       `json:"role"`
	Feedback  string     `json:"feedback"`
	Priority  Priority   `json:"priority"`
	Timestamp time.Time  `json:"timestamp"`
	Status    Status     `json:"status"`
	Solutions []Solution `json:"solutions"`
}

// Solution is a proposed fix appended to a feedback record from the dashboard.
type Solution struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// UnmarshalJSON decodes a record and normalizes an absent solutions list to
// an empty one, so records written before solutions existed load cleanly.
func (r *FeedbackRecord) UnmarshalJSON(data []byte) error {
	type alias FeedbackRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Solutions == nil {
		a.Solutions = []Solution{}
	}
	*r = FeedbackRecord(a)
	return nil
}

// Clone returns a copy of r that shares no memory with it.
func (r FeedbackRecord) Clone() FeedbackRecord {
	out := r
	out.Solutions = make([]Solution, len(r.Solutions))
	copy(out.Solutions, r.Solutions)
	return out
}

// WithStatus returns a copy of r with the status replaced.
func (r FeedbackRecord) WithStatus(s Status) FeedbackRecord {
	out := r.Clone()
	out.Status = s
	return out
}

// WithSolution returns a copy of r with sol appended to its solutions.
func (r FeedbackRecord) WithSolution(sol Solution) FeedbackRecord {
	out := r.Clone()
	out.Solutions = append(out.Solutions, sol)
	return out
}
