package domain

// FilterAll is the wildcard accepted by every FeedbackFilter field.
const FilterAll = "all"

// FeedbackFilter narrows the dashboard feedback list. All predicates are
// ANDed; an empty value or "all" matches everything.
type FeedbackFilter struct {
	Category string
	Status   string
	Scope    DashboardScope
}

// Matches reports whether r passes every predicate of f.
func (f FeedbackFilter) Matches(r FeedbackRecord) bool {
	if !f.Scope.Includes(r.Category) {
		return false
	}
	if !isWildcard(f.Category) && string(r.Category) != f.Category {
		return false
	}
	if !isWildcard(f.Status) && string(r.Status) != f.Status {
		return false
	}
	return true
}

func isWildcard(v string) bool {
	return v == "" || v == FilterAll
}
