package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

func seedTask(t *testing.T, svc *TaskService, title string, due time.Time, prio task.Priority, status task.Status) *task.Task {
	t.Helper()

	tk, err := svc.CreateTask(context.Background(), &task.Task{Title: title, DueDate: due, Priority: prio, Status: status})
	if err != nil {
		t.Fatalf("CreateTask(%q) error = %v", title, err)
	}
	return tk
}

func titles(ts []task.Task) []string {
	out := make([]string, len(ts))
	for i := range ts {
		out[i] = ts[i].Title
	}
	return out
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)
	p := seedProperty(t, s.properties, "1 A St", 1, property.TypeHouse, property.StatusAvailable)
	c := seedClient(t, s.clients, "Jane", "jane@example.com", client.TypeBuyer)

	t.Run("neither link is accepted with defaults", func(t *testing.T) {
		t.Parallel()

		tk, err := s.tasks.CreateTask(ctx, &task.Task{Title: "Paperwork", DueDate: testNow})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if tk.Priority != task.PriorityMedium || tk.Status != task.StatusPending {
			t.Errorf("defaults = %q/%q, want MEDIUM/PENDING", tk.Priority, tk.Status)
		}
	})

	t.Run("both links fail validation", func(t *testing.T) {
		t.Parallel()

		_, err := s.tasks.CreateTask(ctx, &task.Task{
			Title: "Confused", DueDate: testNow, RelatedPropertyID: &p.ID, ClientID: &c.ID,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("CreateTask() error = %v, want ErrValidation", err)
		}
		requireField(t, err, "links")
	})

	t.Run("dangling links fail validation", func(t *testing.T) {
		t.Parallel()

		_, err := s.tasks.CreateTask(ctx, &task.Task{
			Title: "Ghost", DueDate: testNow, ClientID: int64Ptr(999), AssignedTo: int64Ptr(998),
		})
		requireField(t, err, "client_id")
		requireField(t, err, "assigned_to")
	})
}

func TestTaskService_ListTasks_Order(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	seedTask(t, s.tasks, "later", testNow.Add(48*time.Hour), task.PriorityHigh, task.StatusPending)
	seedTask(t, s.tasks, "soon low", testNow.Add(24*time.Hour), task.PriorityLow, task.StatusPending)
	seedTask(t, s.tasks, "soon high", testNow.Add(24*time.Hour), task.PriorityHigh, task.StatusPending)

	got, err := s.tasks.ListTasks(ctx, task.Filter{})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	want := []string{"soon high", "soon low", "later"}
	for i, title := range titles(got) {
		if title != want[i] {
			t.Errorf("ListTasks()[%d] = %q, want %q", i, title, want[i])
		}
	}

	if _, err := s.tasks.ListTasks(ctx, task.Filter{Status: "DONE"}); !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Errorf("ListTasks(DONE) error = %v, want ErrInvalidCriteria", err)
	}
}

func TestTaskService_OverdueAndComplete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	yesterday := testNow.Add(-24 * time.Hour)
	late := seedTask(t, s.tasks, "late", yesterday, task.PriorityHigh, task.StatusPending)
	seedTask(t, s.tasks, "late but done", yesterday, task.PriorityHigh, task.StatusComplete)
	seedTask(t, s.tasks, "late but cancelled", yesterday, task.PriorityHigh, task.StatusCancelled)
	seedTask(t, s.tasks, "future", testNow.Add(time.Hour), task.PriorityHigh, task.StatusPending)

	overdue, err := s.tasks.Overdue(ctx)
	if err != nil {
		t.Fatalf("Overdue() error = %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Fatalf("Overdue() = %v, want [late]", titles(overdue))
	}

	done, err := s.tasks.MarkComplete(ctx, late.ID)
	if err != nil {
		t.Fatalf("MarkComplete() error = %v", err)
	}
	if done.Status != task.StatusComplete {
		t.Errorf("Status = %q, want COMPLETE", done.Status)
	}

	overdue, _ = s.tasks.Overdue(ctx)
	if len(overdue) != 0 {
		t.Errorf("Overdue() after MarkComplete = %v, want none", titles(overdue))
	}

	if _, err := s.tasks.MarkComplete(ctx, late.ID); err != nil {
		t.Errorf("MarkComplete() twice error = %v, want nil", err)
	}
}

func TestTaskService_Upcoming(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	seedTask(t, s.tasks, "tomorrow", testNow.Add(24*time.Hour), task.PriorityLow, task.StatusPending)
	seedTask(t, s.tasks, "in ten days", testNow.Add(10*24*time.Hour), task.PriorityLow, task.StatusPending)
	seedTask(t, s.tasks, "tomorrow done", testNow.Add(24*time.Hour), task.PriorityLow, task.StatusComplete)
	seedTask(t, s.tasks, "yesterday", testNow.Add(-24*time.Hour), task.PriorityLow, task.StatusPending)

	tests := []struct {
		days int
		want int
	}{
		{days: 0, want: 0},
		{days: 7, want: 1},
		{days: 10, want: 2},
	}

	for _, tt := range tests {
		got, err := s.tasks.Upcoming(ctx, tt.days)
		if err != nil {
			t.Fatalf("Upcoming(%d) error = %v", tt.days, err)
		}
		if len(got) != tt.want {
			t.Errorf("Upcoming(%d) = %v, want %d tasks", tt.days, titles(got), tt.want)
		}
	}

	if _, err := s.tasks.Upcoming(ctx, -1); !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Errorf("Upcoming(-1) error = %v, want ErrInvalidCriteria", err)
	}
}

func TestTaskService_Upcoming_WideWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)
	seedTask(t, s.tasks, "in two days", testNow.Add(48*time.Hour), task.PriorityLow, task.StatusPending)

	for _, days := range []int{7, 3650, domain.MaxUpcomingDays} {
		got, err := s.tasks.Upcoming(ctx, days)
		if err != nil {
			t.Fatalf("Upcoming(%d) error = %v", days, err)
		}
		if len(got) != 1 {
			t.Errorf("Upcoming(%d) = %v, want 1 task", days, titles(got))
		}
	}

	for _, days := range []int{domain.MaxUpcomingDays + 1, 200_000, math.MaxInt} {
		if _, err := s.tasks.Upcoming(ctx, days); !errors.Is(err, domain.ErrInvalidCriteria) {
			t.Errorf("Upcoming(%d) error = %v, want ErrInvalidCriteria", days, err)
		}
	}
}

func TestTaskService_MarkInProgress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	open := seedTask(t, s.tasks, "open", testNow, task.PriorityLow, task.StatusPending)
	closed := seedTask(t, s.tasks, "closed", testNow, task.PriorityLow, task.StatusCancelled)

	got, err := s.tasks.MarkInProgress(ctx, open.ID)
	if err != nil || got.Status != task.StatusInProgress {
		t.Errorf("MarkInProgress(open) = %v, %v, want IN_PROGRESS", got, err)
	}
	if _, err := s.tasks.MarkInProgress(ctx, closed.ID); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MarkInProgress(cancelled) error = %v, want ErrValidation", err)
	}
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)
	p := seedProperty(t, s.properties, "1 A St", 1, property.TypeHouse, property.StatusAvailable)
	c := seedClient(t, s.clients, "Jane", "jane@example.com", client.TypeBuyer)

	tk, err := s.tasks.CreateTask(ctx, &task.Task{Title: "Visit", DueDate: testNow, RelatedPropertyID: &p.ID})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	_, err = s.tasks.UpdateTask(ctx, tk.ID, task.Patch{ClientID: &c.ID})
	requireField(t, err, "links")

	moved, err := s.tasks.UpdateTask(ctx, tk.ID, task.Patch{ClientID: &c.ID, RelatedPropertyID: int64Ptr(0)})
	if err != nil {
		t.Fatalf("UpdateTask(switch link) error = %v", err)
	}
	if moved.RelatedPropertyID != nil || moved.ClientID == nil || *moved.ClientID != c.ID {
		t.Errorf("UpdateTask() links = %v/%v, want client only", moved.RelatedPropertyID, moved.ClientID)
	}
}
