package ports

import (
	"context"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/dashboard"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// PropertyService defines the service port for listing operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type PropertyService interface {
	// ListProperties returns listings matching every clause of the filter,
	// ordered by address. Returns domain.ErrInvalidCriteria for unknown
	// status or type codes.
	ListProperties(ctx context.Context, filter property.Filter) ([]property.Property, error)

	// GetProperty returns domain.ErrNotFound if the listing does not exist.
	GetProperty(ctx context.Context, id int64) (*property.Property, error)

	// CreateProperty validates and stores a new listing.
	// Returns domain.ErrValidation if the listing fails validation or the
	// assigned collaborator does not exist.
	CreateProperty(ctx context.Context, p *property.Property) (*property.Property, error)

	// UpdateProperty applies a partial update and re-validates the result.
	UpdateProperty(ctx context.Context, id int64, patch property.Patch) (*property.Property, error)

	// DeleteProperty removes a listing and returns what was deleted.
	// Returns domain.ErrConflict while tasks still reference the listing.
	DeleteProperty(ctx context.Context, id int64) (*property.Property, error)

	// MarkAsSold moves the listing to Sold. Idempotent.
	MarkAsSold(ctx context.Context, id int64) (*property.Property, error)

	// MarkAsPending moves the listing to Pending.
	MarkAsPending(ctx context.Context, id int64) (*property.Property, error)

	// CountByStatus returns a count for every status, zero-filled.
	CountByStatus(ctx context.Context) (map[property.Status]int, error)

	// CountByType returns a count for every property type, zero-filled.
	CountByType(ctx context.Context) (map[property.Type]int, error)

	// TotalValue sums prices of listings in the given status. The empty
	// status means Available.
	TotalValue(ctx context.Context, status property.Status) (domain.Money, error)
}

// ClientService defines the service port for client operations.
type ClientService interface {
	// ListClients returns clients matching the filter, ordered by name.
	ListClients(ctx context.Context, filter client.Filter) ([]client.Client, error)
	GetClient(ctx context.Context, id int64) (*client.Client, error)

	// CreateClient returns domain.ErrConflict for a duplicate email and
	// domain.ErrValidation when an interested property does not exist.
	CreateClient(ctx context.Context, c *client.Client) (*client.Client, error)
	UpdateClient(ctx context.Context, id int64, patch client.Patch) (*client.Client, error)

	// DeleteClient returns domain.ErrConflict while tasks reference the client.
	DeleteClient(ctx context.Context, id int64) (*client.Client, error)

	// Buyers returns clients of type Buyer or Both.
	Buyers(ctx context.Context) ([]client.Client, error)

	// Sellers returns clients of type Seller or Both.
	Sellers(ctx context.Context) ([]client.Client, error)
}

// TaskService defines the service port for task operations.
type TaskService interface {
	// ListTasks returns tasks matching the filter, ordered by due date then
	// priority (High first).
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// CreateTask returns domain.ErrValidation when the task links both a
	// property and a client, or links an entity that does not exist.
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)
	UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error)
	DeleteTask(ctx context.Context, id int64) (*task.Task, error)

	// MarkComplete sets the status to Complete unconditionally.
	MarkComplete(ctx context.Context, id int64) (*task.Task, error)

	// MarkInProgress fails with domain.ErrValidation for finished tasks.
	MarkInProgress(ctx context.Context, id int64) (*task.Task, error)

	// Overdue returns open tasks whose due date has passed.
	Overdue(ctx context.Context) ([]task.Task, error)

	// Upcoming returns open tasks due within the next withinDays days.
	// Returns domain.ErrInvalidCriteria for a negative window.
	Upcoming(ctx context.Context, withinDays int) ([]task.Task, error)
}

// CollaboratorService defines the service port for team member operations.
type CollaboratorService interface {
	ListCollaborators(ctx context.Context, filter collaborator.Filter) ([]collaborator.Collaborator, error)
	GetCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error)
	CreateCollaborator(ctx context.Context, c *collaborator.Collaborator) (*collaborator.Collaborator, error)
	UpdateCollaborator(ctx context.Context, id int64, patch collaborator.Patch) (*collaborator.Collaborator, error)

	// DeleteCollaborator returns domain.ErrConflict while any property or
	// task is still assigned to the member.
	DeleteCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error)

	// Workload counts the open properties and tasks assigned to the member.
	// Returns domain.ErrNotFound for unknown IDs.
	Workload(ctx context.Context, id int64) (*collaborator.Workload, error)
}

// DashboardService composes the read-only summary shown on the dashboard.
type DashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}
