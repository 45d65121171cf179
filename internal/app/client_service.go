package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that ClientService implements ports.ClientService.
var _ ports.ClientService = (*ClientService)(nil)

// ClientService implements ports.ClientService.
type ClientService struct {
	store  ports.Store
	logger *slog.Logger
}

// NewClientService creates a ClientService.
func NewClientService(store ports.Store, logger *slog.Logger) *ClientService {
	return &ClientService{store: store, logger: logger}
}

// ListClients returns clients matching the filter, ordered by name.
func (s *ClientService) ListClients(ctx context.Context, filter client.Filter) ([]client.Client, error) {
	s.logger.InfoContext(ctx, "listing clients", slog.String("client_type", filter.Type.String()))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	clients, err := s.store.ListClients(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list clients",
			slog.String("operation", "ListClients"),
			slog.Any("error", err),
		)
		return nil, err
	}

	client.Sort(clients)
	return clients, nil
}

// GetClient returns a single client by ID.
func (s *ClientService) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	s.logger.InfoContext(ctx, "fetching client", slog.Int64("id", id))

	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch client",
			slog.String("operation", "GetClient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return c, nil
}

// CreateClient validates and stores a new client.
func (s *ClientService) CreateClient(ctx context.Context, c *client.Client) (*client.Client, error) {
	s.logger.InfoContext(ctx, "creating client", slog.String("name", c.Name))

	c.ApplyDefaults()
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	created, err := s.store.CreateClient(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create client",
			slog.String("operation", "CreateClient"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateClient applies a partial update to an existing client.
func (s *ClientService) UpdateClient(ctx context.Context, id int64, patch client.Patch) (*client.Client, error) {
	s.logger.InfoContext(ctx, "updating client", slog.Int64("id", id))

	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateClient(ctx, id, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update client",
			slog.String("operation", "UpdateClient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteClient removes a client that no task references.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) (*client.Client, error) {
	s.logger.InfoContext(ctx, "deleting client", slog.Int64("id", id))

	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.store.ListTasks(ctx, task.Filter{ClientID: &id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count linked tasks",
			slog.String("operation", "DeleteClient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(linked) > 0 {
		return nil, domain.DeleteBlocked(domain.TaskRefs(len(linked)))
	}

	if err := s.store.DeleteClient(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete client",
			slog.String("operation", "DeleteClient"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return c, nil
}

// Buyers returns clients of type Buyer or Both.
func (s *ClientService) Buyers(ctx context.Context) ([]client.Client, error) {
	return s.ListClients(ctx, client.Filter{Side: client.TypeBuyer})
}

// Sellers returns clients of type Seller or Both.
func (s *ClientService) Sellers(ctx context.Context) ([]client.Client, error) {
	return s.ListClients(ctx, client.Filter{Side: client.TypeSeller})
}

func (s *ClientService) validate(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	refs := make([]ref, len(c.InterestedPropertyIDs))
	for i := range c.InterestedPropertyIDs {
		refs[i] = propertyRef(s.store, "interested_property_ids", &c.InterestedPropertyIDs[i])
	}
	return checkRefs(ctx, refs...)
}
