package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that CollaboratorService implements ports.CollaboratorService.
var _ ports.CollaboratorService = (*CollaboratorService)(nil)

// CollaboratorService implements ports.CollaboratorService. Members with
// live assignments cannot be deleted.
type CollaboratorService struct {
	store  ports.Store
	logger *slog.Logger
}

// NewCollaboratorService creates a CollaboratorService.
func NewCollaboratorService(store ports.Store, logger *slog.Logger) *CollaboratorService {
	return &CollaboratorService{store: store, logger: logger}
}

// ListCollaborators returns members matching the filter, ordered by name.
func (s *CollaboratorService) ListCollaborators(ctx context.Context, filter collaborator.Filter) ([]collaborator.Collaborator, error) {
	s.logger.InfoContext(ctx, "listing collaborators", slog.String("role", filter.Role.String()))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	members, err := s.store.ListCollaborators(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list collaborators",
			slog.String("operation", "ListCollaborators"),
			slog.Any("error", err),
		)
		return nil, err
	}

	collaborator.Sort(members)
	return members, nil
}

// GetCollaborator returns a single member by ID.
func (s *CollaboratorService) GetCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error) {
	s.logger.InfoContext(ctx, "fetching collaborator", slog.Int64("id", id))

	c, err := s.store.GetCollaborator(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch collaborator",
			slog.String("operation", "GetCollaborator"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return c, nil
}

// CreateCollaborator validates and stores a new member.
func (s *CollaboratorService) CreateCollaborator(ctx context.Context, c *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	s.logger.InfoContext(ctx, "creating collaborator", slog.String("name", c.Name))

	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateCollaborator(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create collaborator",
			slog.String("operation", "CreateCollaborator"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateCollaborator applies a partial update to an existing member.
func (s *CollaboratorService) UpdateCollaborator(ctx context.Context, id int64, patch collaborator.Patch) (*collaborator.Collaborator, error) {
	s.logger.InfoContext(ctx, "updating collaborator", slog.Int64("id", id))

	c, err := s.GetCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateCollaborator(ctx, id, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update collaborator",
			slog.String("operation", "UpdateCollaborator"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteCollaborator removes a member with no assigned properties or tasks.
// Terminal assignments count too: the reference would dangle otherwise.
func (s *CollaboratorService) DeleteCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error) {
	s.logger.InfoContext(ctx, "deleting collaborator", slog.Int64("id", id))

	c, err := s.GetCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}

	props, tasks, err := s.assignments(ctx, "DeleteCollaborator", id)
	if err != nil {
		return nil, err
	}
	if len(props) > 0 || len(tasks) > 0 {
		var refs []domain.RefCount
		if len(props) > 0 {
			refs = append(refs, domain.PropertyRefs(len(props)))
		}
		if len(tasks) > 0 {
			refs = append(refs, domain.TaskRefs(len(tasks)))
		}
		return nil, domain.DeleteBlocked(refs...)
	}

	if err := s.store.DeleteCollaborator(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete collaborator",
			slog.String("operation", "DeleteCollaborator"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return c, nil
}

// Workload counts the non-terminal properties and tasks assigned to a member.
func (s *CollaboratorService) Workload(ctx context.Context, id int64) (*collaborator.Workload, error) {
	c, err := s.GetCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}

	props, tasks, err := s.assignments(ctx, "Workload", id)
	if err != nil {
		return nil, err
	}

	w := &collaborator.Workload{CollaboratorID: c.ID, Name: c.Name}
	for i := range props {
		if !props[i].Status.IsTerminal() {
			w.Properties++
		}
	}
	for i := range tasks {
		if !tasks[i].Status.IsTerminal() {
			w.Tasks++
		}
	}
	return w, nil
}

func (s *CollaboratorService) assignments(ctx context.Context, op string, id int64) ([]property.Property, []task.Task, error) {
	props, err := s.store.ListProperties(ctx, property.Filter{CollaboratorID: &id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list assigned properties",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	tasks, err := s.store.ListTasks(ctx, task.Filter{AssignedTo: &id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list assigned tasks",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, nil, err
	}
	return props, tasks, nil
}
