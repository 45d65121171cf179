package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that PropertyService implements ports.PropertyService.
var _ ports.PropertyService = (*PropertyService)(nil)

// PropertyService implements ports.PropertyService on top of the store. It
// validates writes, enforces reference rules, and applies the documented
// ordering to every list it returns.
type PropertyService struct {
	store  ports.Store
	clock  ports.Clock
	logger *slog.Logger
}

// NewPropertyService creates a PropertyService. The clock bounds listing
// dates.
func NewPropertyService(store ports.Store, clock ports.Clock, logger *slog.Logger) *PropertyService {
	return &PropertyService{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// ListProperties returns listings matching the filter, ordered by address.
func (s *PropertyService) ListProperties(ctx context.Context, filter property.Filter) ([]property.Property, error) {
	s.logger.InfoContext(ctx, "listing properties",
		slog.String("status", filter.Status.String()),
		slog.String("property_type", filter.Type.String()),
	)

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	props, err := s.store.ListProperties(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list properties",
			slog.String("operation", "ListProperties"),
			slog.Any("error", err),
		)
		return nil, err
	}

	property.Sort(props)
	return props, nil
}

// GetProperty returns a single listing by ID.
func (s *PropertyService) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	s.logger.InfoContext(ctx, "fetching property", slog.Int64("id", id))

	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch property",
			slog.String("operation", "GetProperty"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// CreateProperty validates and stores a new listing.
func (s *PropertyService) CreateProperty(ctx context.Context, p *property.Property) (*property.Property, error) {
	s.logger.InfoContext(ctx, "creating property", slog.String("address", p.Address))

	p.ApplyDefaults()
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.store.CreateProperty(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create property",
			slog.String("operation", "CreateProperty"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateProperty applies a partial update to an existing listing.
func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, patch property.Patch) (*property.Property, error) {
	s.logger.InfoContext(ctx, "updating property", slog.Int64("id", id))

	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	return s.save(ctx, "UpdateProperty", p)
}

// DeleteProperty removes a listing that no task references.
func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) (*property.Property, error) {
	s.logger.InfoContext(ctx, "deleting property", slog.Int64("id", id))

	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.store.ListTasks(ctx, task.Filter{RelatedPropertyID: &id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count linked tasks",
			slog.String("operation", "DeleteProperty"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(linked) > 0 {
		return nil, domain.DeleteBlocked(domain.TaskRefs(len(linked)))
	}

	if err := s.store.DeleteProperty(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete property",
			slog.String("operation", "DeleteProperty"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// MarkAsSold moves a listing to Sold.
func (s *PropertyService) MarkAsSold(ctx context.Context, id int64) (*property.Property, error) {
	return s.transition(ctx, "MarkAsSold", id, (*property.Property).MarkAsSold)
}

// MarkAsPending moves a listing to Pending.
func (s *PropertyService) MarkAsPending(ctx context.Context, id int64) (*property.Property, error) {
	return s.transition(ctx, "MarkAsPending", id, (*property.Property).MarkAsPending)
}

func (s *PropertyService) transition(ctx context.Context, op string, id int64, apply func(*property.Property) error) (*property.Property, error) {
	s.logger.InfoContext(ctx, "changing property status",
		slog.String("operation", op),
		slog.Int64("id", id),
	)

	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(p); err != nil {
		return nil, err
	}
	return s.save(ctx, op, p)
}

// CountByStatus returns the number of listings in each status.
func (s *PropertyService) CountByStatus(ctx context.Context) (map[property.Status]int, error) {
	props, err := s.ListProperties(ctx, property.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[property.Status]int, len(property.Statuses))
	for _, st := range property.Statuses {
		counts[st] = 0
	}
	for i := range props {
		counts[props[i].Status]++
	}
	return counts, nil
}

// CountByType returns the number of listings of each type.
func (s *PropertyService) CountByType(ctx context.Context) (map[property.Type]int, error) {
	props, err := s.ListProperties(ctx, property.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[property.Type]int, len(property.Types))
	for _, t := range property.Types {
		counts[t] = 0
	}
	for i := range props {
		counts[props[i].Type]++
	}
	return counts, nil
}

// TotalValue sums the prices of listings in status (Available when empty).
func (s *PropertyService) TotalValue(ctx context.Context, status property.Status) (domain.Money, error) {
	if status == "" {
		status = property.StatusAvailable
	}

	props, err := s.ListProperties(ctx, property.Filter{Status: status})
	if err != nil {
		return 0, err
	}

	var total domain.Money
	for i := range props {
		total += props[i].Price
	}
	return total, nil
}

func (s *PropertyService) validate(ctx context.Context, p *property.Property) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := p.ValidateListingDate(s.clock.Now()); err != nil {
		return err
	}
	return checkRefs(ctx, collaboratorRef(s.store, "collaborator_id", p.CollaboratorID))
}

func (s *PropertyService) save(ctx context.Context, op string, p *property.Property) (*property.Property, error) {
	updated, err := s.store.UpdateProperty(ctx, p.ID, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update property",
			slog.String("operation", op),
			slog.Int64("id", p.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}
