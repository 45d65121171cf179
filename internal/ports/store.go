package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// PropertyRepository is the store port for listings.
// Implemented by the store adapters; called by the application layer.
type PropertyRepository interface {
	// ListProperties returns listings matching the filter. Ordering is not
	// guaranteed; services apply the documented order.
	ListProperties(ctx context.Context, filter property.Filter) ([]property.Property, error)

	// GetProperty returns domain.ErrNotFound if the listing does not exist.
	GetProperty(ctx context.Context, id int64) (*property.Property, error)

	// CreateProperty stores a new listing and returns it with ID and
	// timestamps assigned.
	CreateProperty(ctx context.Context, p *property.Property) (*property.Property, error)

	// UpdateProperty replaces the stored listing. CreatedAt is preserved.
	// Returns domain.ErrNotFound if the listing does not exist.
	UpdateProperty(ctx context.Context, id int64, p *property.Property) (*property.Property, error)

	// DeleteProperty removes the listing and drops it from every client's
	// interest set. Returns domain.ErrNotFound if the listing does not exist.
	DeleteProperty(ctx context.Context, id int64) error
}

// ClientRepository is the store port for clients.
type ClientRepository interface {
	ListClients(ctx context.Context, filter client.Filter) ([]client.Client, error)

	// GetClient returns domain.ErrNotFound if the client does not exist.
	GetClient(ctx context.Context, id int64) (*client.Client, error)

	// CreateClient returns domain.ErrConflict if another client already uses
	// the email address (case-insensitive).
	CreateClient(ctx context.Context, c *client.Client) (*client.Client, error)

	// UpdateClient replaces the client and its interest set.
	// Returns domain.ErrNotFound or domain.ErrConflict.
	UpdateClient(ctx context.Context, id int64, c *client.Client) (*client.Client, error)

	DeleteClient(ctx context.Context, id int64) error
}

// TaskRepository is the store port for tasks.
type TaskRepository interface {
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)
	GetTask(ctx context.Context, id int64) (*task.Task, error)
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)
	UpdateTask(ctx context.Context, id int64, t *task.Task) (*task.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// CollaboratorRepository is the store port for team members.
type CollaboratorRepository interface {
	ListCollaborators(ctx context.Context, filter collaborator.Filter) ([]collaborator.Collaborator, error)

	// GetCollaborator returns domain.ErrNotFound if the member does not exist.
	GetCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error)

	// CreateCollaborator returns domain.ErrConflict on a duplicate email.
	CreateCollaborator(ctx context.Context, c *collaborator.Collaborator) (*collaborator.Collaborator, error)

	UpdateCollaborator(ctx context.Context, id int64, c *collaborator.Collaborator) (*collaborator.Collaborator, error)
	DeleteCollaborator(ctx context.Context, id int64) error
}

// Store groups every repository. Both store adapters implement it.
type Store interface {
	PropertyRepository
	ClientRepository
	TaskRepository
	CollaboratorRepository
}

// Clock supplies the current time. Overdue and upcoming computations, listing
// date checks and store timestamps all read it.
type Clock interface {
	Now() time.Time
}
