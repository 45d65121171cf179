package memory

import (
	"context"
	"slices"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
)

func cloneProperty(p property.Property) property.Property {
	p.ListingDate = clonePtr(p.ListingDate)
	p.Bedrooms = clonePtr(p.Bedrooms)
	p.Bathrooms = clonePtr(p.Bathrooms)
	p.SquareFeet = clonePtr(p.SquareFeet)
	p.CollaboratorID = clonePtr(p.CollaboratorID)
	return p
}

func propertyCollaborator(p property.Property) *int64 { return p.CollaboratorID }

// ListProperties returns copies of matching listings in ID order.
func (s *Store) ListProperties(_ context.Context, filter property.Filter) ([]property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return selectSorted(s.properties, filter.Matches, cloneProperty), nil
}

func (s *Store) GetProperty(_ context.Context, id int64) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, notFound(domain.KindProperty, id)
	}
	out := cloneProperty(p)
	return &out, nil
}

func (s *Store) CreateProperty(_ context.Context, p *property.Property) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkRef(s.collaborators, "collaborator_id", p.CollaboratorID); err != nil {
		return nil, err
	}

	stored := cloneProperty(*p)
	stored.ID = s.nextID()
	stored.CreatedAt = s.clock.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.properties[stored.ID] = stored

	out := cloneProperty(stored)
	return &out, nil
}

func (s *Store) UpdateProperty(_ context.Context, id int64, p *property.Property) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.properties[id]
	if !ok {
		return nil, notFound(domain.KindProperty, id)
	}
	if err := checkRef(s.collaborators, "collaborator_id", p.CollaboratorID); err != nil {
		return nil, err
	}

	stored := cloneProperty(*p)
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock.Now()
	s.properties[id] = stored

	out := cloneProperty(stored)
	return &out, nil
}

// DeleteProperty removes the listing and strips it from client interest
// sets. Client timestamps are left alone; the interest set is a relation,
// not a client field edit. Listings linked from a task are kept.
func (s *Store) DeleteProperty(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return notFound(domain.KindProperty, id)
	}
	if anyRefers(s.tasks, id, taskProperty) {
		return stillReferenced(domain.KindProperty, id)
	}
	delete(s.properties, id)

	for cid, c := range s.clients {
		if c.IsInterestedIn(id) {
			c.InterestedPropertyIDs = slices.DeleteFunc(slices.Clone(c.InterestedPropertyIDs),
				func(v int64) bool { return v == id })
			if len(c.InterestedPropertyIDs) == 0 {
				c.InterestedPropertyIDs = nil
			}
			s.clients[cid] = c
		}
	}
	return nil
}
