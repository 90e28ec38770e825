package feedback

import (
	"strings"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/validation"
)

// SubmitInput is the feedback form.
type SubmitInput struct {
	Category string `json:"category" validate:"required,category"`
	Role     string `json:"role"     validate:"required,role"`
	Feedback string `json:"feedback" validate:"notblank"`
	Priority string `json:"priority" validate:"omitempty,priority"`
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	return validation.Struct(i)
}

// ListInput narrows the feedback list. Empty fields and "all" are wildcards.
type ListInput struct {
	Category string `json:"category"`
	Status   string `json:"status"   validate:"omitempty,oneof=all pending in-progress resolved"`
	Scope    string `json:"scope"    validate:"omitempty,scope"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	return validation.Struct(i)
}

func (i ListInput) filter() domain.FeedbackFilter {
	return domain.FeedbackFilter{
		Category: i.Category,
		Status:   i.Status,
		Scope:    domain.DashboardScope(i.Scope),
	}
}

// UpdateStatusInput moves a record to a new status.
type UpdateStatusInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status" validate:"required,status"`
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	return validation.Struct(i)
}

// AddSolutionInput appends a proposed solution to a record.
type AddSolutionInput struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"   validate:"notblank"`
	Author string `json:"author"`
}

// Validate checks all fields and collects all errors.
func (i AddSolutionInput) Validate() error {
	return validation.Struct(i)
}

func (i AddSolutionInput) author() string {
	if a := strings.TrimSpace(i.Author); a != "" {
		return a
	}
	return domain.DefaultSolutionAuthor
}
