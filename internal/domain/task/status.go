package task

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Status represents the completion state of a Task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusComplete   Status = "COMPLETE"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every status in declaration order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusComplete, StatusCancelled}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusComplete, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further work is expected.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusCancelled
}

// Label returns the display label.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusComplete:
		return "Complete"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// StatusChoices returns the status selection list.
func StatusChoices() []domain.Choice {
	return domain.ChoicesOf(Statuses...)
}

// ParseStatus converts a code to a Status.
func ParseStatus(code string) (Status, error) {
	return domain.ParseChoice[Status](code)
}
