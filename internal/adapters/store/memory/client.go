package memory

import (
	"context"
	"slices"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
)

func cloneClient(c client.Client) client.Client {
	c.InterestedPropertyIDs = slices.Clone(c.InterestedPropertyIDs)
	return c
}

func clientEmail(c client.Client) string { return c.Email }

// checkInterests must be called with mu held.
func (s *Store) checkInterests(ids []int64) error {
	for i := range ids {
		if err := checkRef(s.properties, "interested_property_ids", &ids[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListClients(_ context.Context, filter client.Filter) ([]client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return selectSorted(s.clients, filter.Matches, cloneClient), nil
}

func (s *Store) GetClient(_ context.Context, id int64) (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, notFound(domain.KindClient, id)
	}
	out := cloneClient(c)
	return &out, nil
}

func (s *Store) CreateClient(_ context.Context, c *client.Client) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emailInUse(s.clients, 0, c.Email, clientEmail) {
		return nil, emailTaken(c.Email)
	}
	if err := s.checkInterests(c.InterestedPropertyIDs); err != nil {
		return nil, err
	}

	stored := cloneClient(*c)
	stored.ID = s.nextID()
	stored.CreatedAt = s.clock.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.clients[stored.ID] = stored

	out := cloneClient(stored)
	return &out, nil
}

func (s *Store) UpdateClient(_ context.Context, id int64, c *client.Client) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[id]
	if !ok {
		return nil, notFound(domain.KindClient, id)
	}
	if emailInUse(s.clients, id, c.Email, clientEmail) {
		return nil, emailTaken(c.Email)
	}
	if err := s.checkInterests(c.InterestedPropertyIDs); err != nil {
		return nil, err
	}

	stored := cloneClient(*c)
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock.Now()
	s.clients[id] = stored

	out := cloneClient(stored)
	return &out, nil
}

func (s *Store) DeleteClient(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return notFound(domain.KindClient, id)
	}
	if anyRefers(s.tasks, id, taskClient) {
		return stillReferenced(domain.KindClient, id)
	}
	delete(s.clients, id)
	return nil
}
