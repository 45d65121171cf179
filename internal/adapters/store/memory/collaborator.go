package memory

import (
	"context"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
)

func cloneCollaborator(c collaborator.Collaborator) collaborator.Collaborator { return c }

func collaboratorEmail(c collaborator.Collaborator) string { return c.Email }

func (s *Store) ListCollaborators(_ context.Context, filter collaborator.Filter) ([]collaborator.Collaborator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return selectSorted(s.collaborators, filter.Matches, cloneCollaborator), nil
}

func (s *Store) GetCollaborator(_ context.Context, id int64) (*collaborator.Collaborator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collaborators[id]
	if !ok {
		return nil, notFound(domain.KindCollaborator, id)
	}
	return &c, nil
}

func (s *Store) CreateCollaborator(_ context.Context, c *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emailInUse(s.collaborators, 0, c.Email, collaboratorEmail) {
		return nil, emailTaken(c.Email)
	}

	stored := *c
	stored.ID = s.nextID()
	stored.CreatedAt = s.clock.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.collaborators[stored.ID] = stored

	out := stored
	return &out, nil
}

func (s *Store) UpdateCollaborator(_ context.Context, id int64, c *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collaborators[id]
	if !ok {
		return nil, notFound(domain.KindCollaborator, id)
	}
	if emailInUse(s.collaborators, id, c.Email, collaboratorEmail) {
		return nil, emailTaken(c.Email)
	}

	stored := *c
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock.Now()
	s.collaborators[id] = stored

	out := stored
	return &out, nil
}

func (s *Store) DeleteCollaborator(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collaborators[id]; !ok {
		return notFound(domain.KindCollaborator, id)
	}
	if anyRefers(s.properties, id, propertyCollaborator) || anyRefers(s.tasks, id, taskAssignee) {
		return stillReferenced(domain.KindCollaborator, id)
	}
	delete(s.collaborators, id)
	return nil
}
