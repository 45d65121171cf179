package task

import (
	"cmp"
	"slices"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Filter holds optional filter criteria for listing tasks.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status            Status
	Priority          Priority
	Query             string
	AssignedTo        *int64
	RelatedPropertyID *int64
	ClientID          *int64
}

// Validate returns an error wrapping domain.ErrInvalidCriteria for unknown
// status or priority codes.
func (f Filter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return domain.InvalidCriteria("status", domain.InvalidChoice(f.Status))
	}
	if f.Priority != "" && !f.Priority.IsValid() {
		return domain.InvalidCriteria("priority", domain.InvalidChoice(f.Priority))
	}
	return nil
}

// Matches reports whether t satisfies every clause of the filter.
func (f Filter) Matches(t *Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if !refMatches(f.AssignedTo, t.AssignedTo) ||
		!refMatches(f.RelatedPropertyID, t.RelatedPropertyID) ||
		!refMatches(f.ClientID, t.ClientID) {
		return false
	}
	return domain.EqualFoldContains(f.Query, t.Title, t.Description)
}

func refMatches(want, got *int64) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

// Sort orders tasks by due date, then priority (High first), then ID.
func Sort(ts []Task) {
	slices.SortStableFunc(ts, func(a, b Task) int {
		return cmp.Or(
			a.DueDate.Compare(b.DueDate),
			cmp.Compare(b.Priority.Rank(), a.Priority.Rank()),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
