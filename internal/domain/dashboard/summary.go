// Package dashboard holds the read-only summary computed over every entity
// set for presentation.
package dashboard

import (
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// Summary is the dashboard view.
type Summary struct {
	Properties    PropertyStats
	Clients       ClientStats
	Tasks         TaskStats
	Collaborators CollaboratorStats
}

// PropertyStats summarizes listings.
type PropertyStats struct {
	Total          int
	ByStatus       map[property.Status]int
	ByType         map[property.Type]int
	AvailableValue domain.Money
	AveragePrice   domain.Money
}

// ClientStats is the buyer/seller split. A client of type Both counts on
// both sides.
type ClientStats struct {
	Total      int
	Buyers     int
	Sellers    int
	BuyerRatio float64
}

// TaskStats summarizes tasks.
type TaskStats struct {
	Total          int
	ByStatus       map[task.Status]int
	Pending        int
	Overdue        int
	Upcoming       int
	UpcomingDays   int
	CompletionRate float64
}

// CollaboratorStats is the team size and per-member workload table, sorted
// by name.
type CollaboratorStats struct {
	Total    int
	Workload []collaborator.Workload
}

// Ratio returns part/whole, or 0 when whole is 0.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// Average returns sum/n, or 0 when n is 0.
func Average(sum domain.Money, n int) domain.Money {
	if n == 0 {
		return 0
	}
	return sum / domain.Money(n)
}
