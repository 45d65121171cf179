package property

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Status represents where a listing is in its sales lifecycle.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusPending   Status = "PENDING"
	StatusSold      Status = "SOLD"
	StatusRented    Status = "RENTED"
	StatusWithdrawn Status = "WITHDRAWN"
)

// Statuses lists every status in declaration order.
var Statuses = []Status{StatusAvailable, StatusPending, StatusSold, StatusRented, StatusWithdrawn}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold, StatusRented, StatusWithdrawn:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the listing no longer needs work: Sold or
// Withdrawn listings do not count toward a collaborator's workload.
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusWithdrawn
}

// Label returns the display label.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusPending:
		return "Pending"
	case StatusSold:
		return "Sold"
	case StatusRented:
		return "Rented"
	case StatusWithdrawn:
		return "Withdrawn"
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
