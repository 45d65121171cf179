package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/realestate-crm/internal/app/fanout"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/dashboard"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardOptions tunes the summary.
type DashboardOptions struct {
	// UpcomingDays is the forward window for the upcoming task count.
	UpcomingDays int

	// MaxWorkers bounds concurrent workload lookups.
	MaxWorkers int
}

// DashboardService implements ports.DashboardService by composing the entity
// services. It never writes.
type DashboardService struct {
	properties    ports.PropertyService
	clients       ports.ClientService
	tasks         ports.TaskService
	collaborators ports.CollaboratorService
	opts          DashboardOptions
	logger        *slog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(
	properties ports.PropertyService,
	clients ports.ClientService,
	tasks ports.TaskService,
	collaborators ports.CollaboratorService,
	opts DashboardOptions,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		properties:    properties,
		clients:       clients,
		tasks:         tasks,
		collaborators: collaborators,
		opts:          opts,
		logger:        logger,
	}
}

// Summary loads the four sections concurrently and assembles the dashboard.
func (s *DashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	s.logger.InfoContext(ctx, "building dashboard summary")

	var sum dashboard.Summary
	err := fanout.All(ctx,
		func(ctx context.Context) error { return s.propertyStats(ctx, &sum.Properties) },
		func(ctx context.Context) error { return s.clientStats(ctx, &sum.Clients) },
		func(ctx context.Context) error { return s.taskStats(ctx, &sum.Tasks) },
		func(ctx context.Context) error { return s.collaboratorStats(ctx, &sum.Collaborators) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build dashboard summary",
			slog.String("operation", "Summary"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &sum, nil
}

func (s *DashboardService) propertyStats(ctx context.Context, out *dashboard.PropertyStats) error {
	props, err := s.properties.ListProperties(ctx, property.Filter{})
	if err != nil {
		return err
	}
	byStatus, err := s.properties.CountByStatus(ctx)
	if err != nil {
		return err
	}
	byType, err := s.properties.CountByType(ctx)
	if err != nil {
		return err
	}
	available, err := s.properties.TotalValue(ctx, property.StatusAvailable)
	if err != nil {
		return err
	}

	var total domain.Money
	for i := range props {
		total += props[i].Price
	}

	*out = dashboard.PropertyStats{
		Total:          len(props),
		ByStatus:       byStatus,
		ByType:         byType,
		AvailableValue: available,
		AveragePrice:   dashboard.Average(total, len(props)),
	}
	return nil
}

func (s *DashboardService) clientStats(ctx context.Context, out *dashboard.ClientStats) error {
	all, err := s.clients.ListClients(ctx, client.Filter{})
	if err != nil {
		return err
	}
	buyers, err := s.clients.Buyers(ctx)
	if err != nil {
		return err
	}
	sellers, err := s.clients.Sellers(ctx)
	if err != nil {
		return err
	}

	*out = dashboard.ClientStats{
		Total:      len(all),
		Buyers:     len(buyers),
		Sellers:    len(sellers),
		BuyerRatio: dashboard.Ratio(len(buyers), len(all)),
	}
	return nil
}

func (s *DashboardService) taskStats(ctx context.Context, out *dashboard.TaskStats) error {
	all, err := s.tasks.ListTasks(ctx, task.Filter{})
	if err != nil {
		return err
	}
	overdue, err := s.tasks.Overdue(ctx)
	if err != nil {
		return err
	}
	upcoming, err := s.tasks.Upcoming(ctx, s.opts.UpcomingDays)
	if err != nil {
		return err
	}

	byStatus := make(map[task.Status]int, len(task.Statuses))
	for _, st := range task.Statuses {
		byStatus[st] = 0
	}
	for i := range all {
		byStatus[all[i].Status]++
	}

	*out = dashboard.TaskStats{
		Total:          len(all),
		ByStatus:       byStatus,
		Pending:        byStatus[task.StatusPending],
		Overdue:        len(overdue),
		Upcoming:       len(upcoming),
		UpcomingDays:   s.opts.UpcomingDays,
		CompletionRate: dashboard.Ratio(byStatus[task.StatusComplete], len(all)),
	}
	return nil
}

func (s *DashboardService) collaboratorStats(ctx context.Context, out *dashboard.CollaboratorStats) error {
	members, err := s.collaborators.ListCollaborators(ctx, collaborator.Filter{})
	if err != nil {
		return err
	}

	results := fanout.Run(ctx, s.opts.MaxWorkers, members,
		func(ctx context.Context, c collaborator.Collaborator) (collaborator.Workload, error) {
			w, err := s.collaborators.Workload(ctx, c.ID)
			if err != nil {
				return collaborator.Workload{}, err
			}
			return *w, nil
		})
	// A collaborator deleted after the listing drops out of the summary.
	live := results[:0]
	for _, r := range results {
		if !errors.Is(r.Err, domain.ErrNotFound) {
			live = append(live, r)
		}
	}
	workloads, err := fanout.Values(live)
	if err != nil {
		return err
	}

	*out = dashboard.CollaboratorStats{
		Total:    len(workloads),
		Workload: workloads,
	}
	return nil
}
