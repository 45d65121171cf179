// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/dashboard"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// MessageResponse wraps the result of a mutation with its user feedback
// message.
type MessageResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListResponse is the envelope for every collection endpoint.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func toList[E, T any](items []E, conv func(*E) T) ListResponse[T] {
	out := make([]T, len(items))
	for i := range items {
		out[i] = conv(&items[i])
	}
	return ListResponse[T]{Items: out, Count: len(out)}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// --- Properties ---

// PropertyResponse represents a single listing in HTTP responses.
type PropertyResponse struct {
	ID                  int64    `json:"id"`
	Address             string   `json:"address"`
	Price               float64  `json:"price"`
	PriceDisplay        string   `json:"price_display"`
	PropertyType        string   `json:"property_type"`
	PropertyTypeDisplay string   `json:"property_type_display"`
	Status              string   `json:"status"`
	StatusDisplay       string   `json:"status_display"`
	Description         string   `json:"description"`
	ListingDate         *string  `json:"listing_date"`
	Bedrooms            *int     `json:"bedrooms"`
	Bathrooms           *float64 `json:"bathrooms"`
	SquareFeet          *int     `json:"square_feet"`
	CollaboratorID      *int64   `json:"collaborator_id"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// ToPropertyResponse converts a domain Property to an HTTP response DTO.
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:                  p.ID,
		Address:             p.Address,
		Price:               p.Price.Float(),
		PriceDisplay:        p.Price.String(),
		PropertyType:        p.Type.String(),
		PropertyTypeDisplay: p.Type.Label(),
		Status:              p.Status.String(),
		StatusDisplay:       p.Status.Label(),
		Description:         p.Description,
		ListingDate:         formatDate(p.ListingDate),
		Bedrooms:            p.Bedrooms,
		Bathrooms:           p.Bathrooms,
		SquareFeet:          p.SquareFeet,
		CollaboratorID:      p.CollaboratorID,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPropertyListResponse converts listings to a list envelope.
func ToPropertyListResponse(props []property.Property) ListResponse[PropertyResponse] {
	return toList(props, ToPropertyResponse)
}

// PropertyStatsResponse is the body of GET /properties/stats.
type PropertyStatsResponse struct {
	ByStatus       map[string]int `json:"by_status"`
	ByType         map[string]int `json:"by_type"`
	AvailableValue float64        `json:"available_value"`
}

// ToPropertyStatsResponse converts the per-status and per-type counts.
func ToPropertyStatsResponse(
	byStatus map[property.Status]int,
	byType map[property.Type]int,
	available domain.Money,
) PropertyStatsResponse {
	return PropertyStatsResponse{
		ByStatus:       stringKeys(byStatus),
		ByType:         stringKeys(byType),
		AvailableValue: available.Float(),
	}
}

func stringKeys[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

// --- Clients ---

// ClientResponse represents a single client in HTTP responses.
type ClientResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	ClientType            string  `json:"client_type"`
	ClientTypeDisplay     string  `json:"client_type_display"`
	Notes                 string  `json:"notes"`
	InterestedPropertyIDs []int64 `json:"interested_property_ids"`
	InterestCount         int     `json:"interest_count"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

// ToClientResponse converts a domain Client to an HTTP response DTO.
func ToClientResponse(c *client.Client) ClientResponse {
	ids := c.InterestedPropertyIDs
	if ids == nil {
		ids = []int64{}
	}
	return ClientResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		ClientType:            c.Type.String(),
		ClientTypeDisplay:     c.Type.Label(),
		Notes:                 c.Notes,
		InterestedPropertyIDs: ids,
		InterestCount:         c.InterestCount(),
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToClientListResponse converts clients to a list envelope.
func ToClientListResponse(cs []client.Client) ListResponse[ClientResponse] {
	return toList(cs, ToClientResponse)
}

// --- Tasks ---

// TaskResponse represents a single task in HTTP responses. IsOverdue is
// computed at response time.
type TaskResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	DueDate           string `json:"due_date"`
	Priority          string `json:"priority"`
	PriorityDisplay   string `json:"priority_display"`
	Status            string `json:"status"`
	StatusDisplay     string `json:"status_display"`
	AssignedTo        *int64 `json:"assigned_to"`
	RelatedPropertyID *int64 `json:"related_property_id"`
	ClientID          *int64 `json:"client_id"`
	IsOverdue         bool   `json:"is_overdue"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		DueDate:           t.DueDate.Format(time.RFC3339),
		Priority:          t.Priority.String(),
		PriorityDisplay:   t.Priority.Label(),
		Status:            t.Status.String(),
		StatusDisplay:     t.Status.Label(),
		AssignedTo:        t.AssignedTo,
		RelatedPropertyID: t.RelatedPropertyID,
		ClientID:          t.ClientID,
		IsOverdue:         t.IsOverdue(now),
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTaskListResponse converts tasks to a list envelope.
func ToTaskListResponse(ts []task.Task, now time.Time) ListResponse[TaskResponse] {
	return toList(ts, func(t *task.Task) TaskResponse { return ToTaskResponse(t, now) })
}

// --- Collaborators ---

// CollaboratorResponse represents a single team member in HTTP responses.
type CollaboratorResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToCollaboratorResponse converts a domain Collaborator to an HTTP response DTO.
func ToCollaboratorResponse(c *collaborator.Collaborator) CollaboratorResponse {
	return CollaboratorResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Role:        c.Role.String(),
		RoleDisplay: c.Role.Label(),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCollaboratorListResponse converts team members to a list envelope.
func ToCollaboratorListResponse(cs []collaborator.Collaborator) ListResponse[CollaboratorResponse] {
	return toList(cs, ToCollaboratorResponse)
}

// WorkloadResponse is one row of a workload table.
type WorkloadResponse struct {
	CollaboratorID int64  `json:"collaborator_id"`
	Name           string `json:"name"`
	Properties     int    `json:"properties"`
	Tasks          int    `json:"tasks"`
	Total          int    `json:"total"`
}

// ToWorkloadResponse converts a workload row.
func ToWorkloadResponse(w *collaborator.Workload) WorkloadResponse {
	return WorkloadResponse{
		CollaboratorID: w.CollaboratorID,
		Name:           w.Name,
		Properties:     w.Properties,
		Tasks:          w.Tasks,
		Total:          w.Total(),
	}
}

// --- Dashboard ---

// DashboardResponse is the body of GET /dashboard.
type DashboardResponse struct {
	Properties struct {
		Total          int            `json:"total"`
		ByStatus       map[string]int `json:"by_status"`
		ByType         map[string]int `json:"by_type"`
		AvailableValue float64        `json:"available_value"`
		AveragePrice   float64        `json:"average_price"`
	} `json:"properties"`
	Clients struct {
		Total      int     `json:"total"`
		Buyers     int     `json:"buyers"`
		Sellers    int     `json:"sellers"`
		BuyerRatio float64 `json:"buyer_ratio"`
	} `json:"clients"`
	Tasks struct {
		Total          int            `json:"total"`
		ByStatus       map[string]int `json:"by_status"`
		Pending        int            `json:"pending"`
		Overdue        int            `json:"overdue"`
		Upcoming       int            `json:"upcoming"`
		UpcomingDays   int            `json:"upcoming_days"`
		CompletionRate float64        `json:"completion_rate"`
	} `json:"tasks"`
	Collaborators struct {
		Total    int                `json:"total"`
		Workload []WorkloadResponse `json:"workload"`
	} `json:"collaborators"`
}

// ToDashboardResponse converts a dashboard summary.
func ToDashboardResponse(s *dashboard.Summary) DashboardResponse {
	var resp DashboardResponse

	resp.Properties.Total = s.Properties.Total
	resp.Properties.ByStatus = stringKeys(s.Properties.ByStatus)
	resp.Properties.ByType = stringKeys(s.Properties.ByType)
	resp.Properties.AvailableValue = s.Properties.AvailableValue.Float()
	resp.Properties.AveragePrice = s.Properties.AveragePrice.Float()

	resp.Clients.Total = s.Clients.Total
	resp.Clients.Buyers = s.Clients.Buyers
	resp.Clients.Sellers = s.Clients.Sellers
	resp.Clients.BuyerRatio = s.Clients.BuyerRatio

	resp.Tasks.Total = s.Tasks.Total
	resp.Tasks.ByStatus = stringKeys(s.Tasks.ByStatus)
	resp.Tasks.Pending = s.Tasks.Pending
	resp.Tasks.Overdue = s.Tasks.Overdue
	resp.Tasks.Upcoming = s.Tasks.Upcoming
	resp.Tasks.UpcomingDays = s.Tasks.UpcomingDays
	resp.Tasks.CompletionRate = s.Tasks.CompletionRate

	resp.Collaborators.Total = s.Collaborators.Total
	resp.Collaborators.Workload = make([]WorkloadResponse, len(s.Collaborators.Workload))
	for i := range s.Collaborators.Workload {
		resp.Collaborators.Workload[i] = ToWorkloadResponse(&s.Collaborators.Workload[i])
	}

	return resp
}

// ChoicesResponse lists every enumerated vocabulary as code/label pairs in
// declaration order.
type ChoicesResponse struct {
	PropertyStatus   []domain.Choice `json:"property_status"`
	PropertyType     []domain.Choice `json:"property_type"`
	ClientType       []domain.Choice `json:"client_type"`
	TaskStatus       []domain.Choice `json:"task_status"`
	TaskPriority     []domain.Choice `json:"task_priority"`
	CollaboratorRole []domain.Choice `json:"collaborator_role"`
}

// NewChoicesResponse builds the choices payload.
func NewChoicesResponse() ChoicesResponse {
	return ChoicesResponse{
		PropertyStatus:   property.StatusChoices(),
		PropertyType:     property.TypeChoices(),
		ClientType:       client.TypeChoices(),
		TaskStatus:       task.StatusChoices(),
		TaskPriority:     task.PriorityChoices(),
		CollaboratorRole: collaborator.RoleChoices(),
	}
}
