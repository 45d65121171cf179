package memory

import (
	"context"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

func cloneTask(t task.Task) task.Task {
	t.AssignedTo = clonePtr(t.AssignedTo)
	t.RelatedPropertyID = clonePtr(t.RelatedPropertyID)
	t.ClientID = clonePtr(t.ClientID)
	return t
}

func taskAssignee(t task.Task) *int64 { return t.AssignedTo }

func taskProperty(t task.Task) *int64 { return t.RelatedPropertyID }

func taskClient(t task.Task) *int64 { return t.ClientID }

// checkTaskRefs must be called with mu held.
func (s *Store) checkTaskRefs(t *task.Task) error {
	if err := checkRef(s.collaborators, "assigned_to", t.AssignedTo); err != nil {
		return err
	}
	if err := checkRef(s.properties, "related_property_id", t.RelatedPropertyID); err != nil {
		return err
	}
	return checkRef(s.clients, "client_id", t.ClientID)
}

func (s *Store) ListTasks(_ context.Context, filter task.Filter) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return selectSorted(s.tasks, filter.Matches, cloneTask), nil
}

func (s *Store) GetTask(_ context.Context, id int64) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFound(domain.KindTask, id)
	}
	out := cloneTask(t)
	return &out, nil
}

func (s *Store) CreateTask(_ context.Context, t *task.Task) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTaskRefs(t); err != nil {
		return nil, err
	}

	stored := cloneTask(*t)
	stored.ID = s.nextID()
	stored.CreatedAt = s.clock.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.tasks[stored.ID] = stored

	out := cloneTask(stored)
	return &out, nil
}

func (s *Store) UpdateTask(_ context.Context, id int64, t *task.Task) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[id]
	if !ok {
		return nil, notFound(domain.KindTask, id)
	}
	if err := s.checkTaskRefs(t); err != nil {
		return nil, err
	}

	stored := cloneTask(*t)
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock.Now()
	s.tasks[id] = stored

	out := cloneTask(stored)
	return &out, nil
}

func (s *Store) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return notFound(domain.KindTask, id)
	}
	delete(s.tasks, id)
	return nil
}
