package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Overdue and upcoming windows are
// evaluated against the injected clock.
type TaskService struct {
	store  ports.Store
	clock  ports.Clock
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(store ports.Store, clock ports.Clock, logger *slog.Logger) *TaskService {
	return &TaskService{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// ListTasks returns tasks matching the filter, soonest due first.
func (s *TaskService) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks",
		slog.String("status", filter.Status.String()),
		slog.String("priority", filter.Priority.String()),
	)

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := s.store.ListTasks(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	task.Sort(tasks)
	return tasks, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.Int64("id", id))

	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// CreateTask validates and stores a new task.
func (s *TaskService) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	t.ApplyDefaults()
	if err := s.validate(ctx, t); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTask(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateTask applies a partial update to an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("id", id))

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(t)
	if err := s.validate(ctx, t); err != nil {
		return nil, err
	}
	return s.save(ctx, "UpdateTask", t)
}

// DeleteTask removes a task. Nothing references tasks, so it never blocks.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("id", id))

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteTask(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// MarkComplete sets a task to Complete.
func (s *TaskService) MarkComplete(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "completing task", slog.Int64("id", id))

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	t.MarkComplete()
	return s.save(ctx, "MarkComplete", t)
}

// MarkInProgress starts work on an open task.
func (s *TaskService) MarkInProgress(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "starting task", slog.Int64("id", id))

	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.MarkInProgress(); err != nil {
		return nil, err
	}
	return s.save(ctx, "MarkInProgress", t)
}

// Overdue returns open tasks whose due date is before now.
func (s *TaskService) Overdue(ctx context.Context) ([]task.Task, error) {
	now := s.clock.Now()
	return s.selectTasks(ctx, func(t *task.Task) bool { return t.IsOverdue(now) })
}

// Upcoming returns open tasks due between now and withinDays days from now,
// inclusive.
func (s *TaskService) Upcoming(ctx context.Context, withinDays int) ([]task.Task, error) {
	switch {
	case withinDays < 0:
		return nil, domain.InvalidCriteria("days", fmt.Errorf("must not be negative, got %d", withinDays))
	case withinDays > domain.MaxUpcomingDays:
		return nil, domain.InvalidCriteria("days",
			fmt.Errorf("must be at most %d, got %d", domain.MaxUpcomingDays, withinDays))
	}

	now := s.clock.Now()
	until := now.AddDate(0, 0, withinDays)
	return s.selectTasks(ctx, func(t *task.Task) bool { return t.IsDueBetween(now, until) })
}

func (s *TaskService) selectTasks(ctx context.Context, keep func(*task.Task) bool) ([]task.Task, error) {
	all, err := s.ListTasks(ctx, task.Filter{})
	if err != nil {
		return nil, err
	}

	out := make([]task.Task, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *TaskService) validate(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return checkRefs(ctx,
		collaboratorRef(s.store, "assigned_to", t.AssignedTo),
		propertyRef(s.store, "related_property_id", t.RelatedPropertyID),
		clientRef(s.store, "client_id", t.ClientID),
	)
}

func (s *TaskService) save(ctx context.Context, op string, t *task.Task) (*task.Task, error) {
	updated, err := s.store.UpdateTask(ctx, t.ID, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", op),
			slog.Int64("id", t.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}
