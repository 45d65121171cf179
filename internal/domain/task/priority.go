package task

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Priority ranks how urgent a Task is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists every priority in declaration order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities: Low < Medium < High. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// Label returns the display label.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// PriorityChoices returns the priority selection list.
func PriorityChoices() []domain.Choice {
	return domain.ChoicesOf(Priorities...)
}

// ParsePriority converts a code to a Priority.
func ParsePriority(code string) (Priority, error) {
	return domain.ParseChoice[Priority](code)
}
