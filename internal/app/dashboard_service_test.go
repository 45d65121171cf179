package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

func newDashboard(s services) *DashboardService {
	return NewDashboardService(s.properties, s.clients, s.tasks, s.collaborators,
		DashboardOptions{UpcomingDays: 7, MaxWorkers: 2}, discardLogger())
}

func TestDashboardService_Summary_Empty(t *testing.T) {
	t.Parallel()

	s := newServices(t)
	sum, err := newDashboard(s).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if sum.Properties.Total != 0 || sum.Properties.AveragePrice != 0 || sum.Properties.AvailableValue != 0 {
		t.Errorf("Properties = %+v, want zeros", sum.Properties)
	}
	if sum.Clients.BuyerRatio != 0 || math.IsNaN(sum.Clients.BuyerRatio) {
		t.Errorf("BuyerRatio = %v, want 0", sum.Clients.BuyerRatio)
	}
	if sum.Tasks.CompletionRate != 0 || math.IsNaN(sum.Tasks.CompletionRate) {
		t.Errorf("CompletionRate = %v, want 0", sum.Tasks.CompletionRate)
	}
	if len(sum.Properties.ByStatus) != len(property.Statuses) || len(sum.Tasks.ByStatus) != len(task.Statuses) {
		t.Errorf("count maps are not zero-filled: %v %v", sum.Properties.ByStatus, sum.Tasks.ByStatus)
	}
	if sum.Collaborators.Total != 0 || len(sum.Collaborators.Workload) != 0 {
		t.Errorf("Collaborators = %+v, want empty", sum.Collaborators)
	}
}

func TestDashboardService_Summary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	ann := seedCollaborator(t, s.collaborators, "Ann", "ann@agency.example")
	seedCollaborator(t, s.collaborators, "Ben", "ben@agency.example")
	assign(t, s, ann.ID, []property.Status{property.StatusAvailable}, []task.Status{task.StatusPending})

	seedProperty(t, s.properties, "1 A St", 100000, property.TypeHouse, property.StatusAvailable)
	seedProperty(t, s.properties, "2 B St", 300000, property.TypeCondo, property.StatusSold)

	seedClient(t, s.clients, "Bea", "bea@example.com", client.TypeBuyer)
	seedClient(t, s.clients, "Sam", "sam@example.com", client.TypeSeller)
	seedClient(t, s.clients, "Bo", "bo@example.com", client.TypeBoth)
	seedClient(t, s.clients, "Bri", "bri@example.com", client.TypeBuyer)

	seedTask(t, s.tasks, "overdue", testNow.Add(-time.Hour), task.PriorityHigh, task.StatusPending)
	seedTask(t, s.tasks, "done", testNow.Add(-time.Hour), task.PriorityHigh, task.StatusComplete)
	seedTask(t, s.tasks, "far", testNow.Add(30*24*time.Hour), task.PriorityLow, task.StatusInProgress)

	sum, err := newDashboard(s).Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	p := sum.Properties
	if p.Total != 3 || p.ByStatus[property.StatusAvailable] != 2 || p.ByType[property.TypeCondo] != 1 {
		t.Errorf("Properties = %+v", p)
	}
	if want := domain.MoneyFromFloat(100000); p.AvailableValue != want {
		t.Errorf("AvailableValue = %s, want %s", p.AvailableValue, want)
	}
	if want := domain.MoneyFromFloat(400000.0 / 3); p.AveragePrice != want {
		t.Errorf("AveragePrice = %s, want %s", p.AveragePrice, want)
	}

	c := sum.Clients
	if c.Total != 4 || c.Buyers != 3 || c.Sellers != 2 || c.BuyerRatio != 0.75 {
		t.Errorf("Clients = %+v", c)
	}

	tk := sum.Tasks
	if tk.Total != 4 || tk.Pending != 2 || tk.Overdue != 1 || tk.Upcoming != 1 || tk.UpcomingDays != 7 {
		t.Errorf("Tasks = %+v", tk)
	}
	if tk.CompletionRate != 0.25 {
		t.Errorf("CompletionRate = %v, want 0.25", tk.CompletionRate)
	}

	w := sum.Collaborators.Workload
	if sum.Collaborators.Total != 2 || len(w) != 2 {
		t.Fatalf("Collaborators = %+v", sum.Collaborators)
	}
	if w[0].Name != "Ann" || w[0].Total() != 2 || w[1].Name != "Ben" || w[1].Total() != 0 {
		t.Errorf("Workload = %+v", w)
	}
}

type failingTasks struct {
	ports.TaskService
}

func (failingTasks) ListTasks(context.Context, task.Filter) ([]task.Task, error) {
	return nil, domain.ErrUnavailable
}

// deleteOnList removes one collaborator right after the listing is taken.
type deleteOnList struct {
	ports.CollaboratorService
	victim int64
}

func (d deleteOnList) ListCollaborators(ctx context.Context, f collaborator.Filter) ([]collaborator.Collaborator, error) {
	members, err := d.CollaboratorService.ListCollaborators(ctx, f)
	if err != nil {
		return nil, err
	}
	if _, err := d.CollaboratorService.DeleteCollaborator(ctx, d.victim); err != nil {
		return nil, err
	}
	return members, nil
}

func TestDashboardService_Summary_CollaboratorDeletedMidway(t *testing.T) {
	t.Parallel()

	s := newServices(t)
	seedCollaborator(t, s.collaborators, "Ann", "ann@agency.example")
	ben := seedCollaborator(t, s.collaborators, "Ben", "ben@agency.example")

	d := NewDashboardService(s.properties, s.clients, s.tasks,
		deleteOnList{CollaboratorService: s.collaborators, victim: ben.ID},
		DashboardOptions{UpcomingDays: 7, MaxWorkers: 2}, discardLogger())

	sum, err := d.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	w := sum.Collaborators.Workload
	if sum.Collaborators.Total != 1 || len(w) != 1 || w[0].Name != "Ann" {
		t.Errorf("Collaborators = %+v, want only Ann", sum.Collaborators)
	}
}

func TestDashboardService_Summary_Error(t *testing.T) {
	t.Parallel()

	s := newServices(t)
	d := NewDashboardService(s.properties, s.clients, failingTasks{}, s.collaborators,
		DashboardOptions{UpcomingDays: 7, MaxWorkers: 1}, discardLogger())

	if _, err := d.Summary(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Summary() error = %v, want ErrUnavailable", err)
	}
}
