package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// Wire formats for dates.
const (
	DateLayout     = time.DateOnly
	DateTimeLayout = time.RFC3339
)

// shape checks request bodies before they are mapped to domain types. Field
// names in its errors are the JSON names.
var shape = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkShape runs the struct tags of req and converts failures into a
// *domain.ValidationError keyed by JSON field name.
func checkShape(req any) error {
	err := shape.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = shapeMessage(fe)
	}
	return domain.Fail(fields)
}

func shapeMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return domain.MsgMustNotEmpty
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// code normalizes an enumeration code from the wire: codes are accepted in
// any case ("in_progress", "IN_PROGRESS").
func code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func codePtr[E ~string](s *string) *E {
	if s == nil {
		return nil
	}
	v := E(code(*s))
	return &v
}

func parseDate(fields map[string]string, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		fields[field] = "must be a date formatted YYYY-MM-DD"
		return nil
	}
	return &t
}

// parseDateTime accepts RFC 3339 timestamps and bare dates (midnight UTC).
func parseDateTime(fields map[string]string, field, raw string) (time.Time, bool) {
	if t, err := time.Parse(DateTimeLayout, raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, true
	}
	fields[field] = fmt.Sprintf("must be an RFC 3339 timestamp or YYYY-MM-DD date, got %q", raw)
	return time.Time{}, false
}

// trimmed returns a copy of s without surrounding whitespace.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// dayBefore reports whether t falls on an earlier UTC calendar day than now.
func dayBefore(t, now time.Time) bool {
	return t.UTC().Truncate(24 * time.Hour).Before(now.UTC().Truncate(24 * time.Hour))
}

func moneyPtr(v *float64) *domain.Money {
	if v == nil {
		return nil
	}
	m := domain.MoneyFromFloat(*v)
	return &m
}

// --- Properties ---

// CreatePropertyRequest is the JSON body for POST /properties.
type CreatePropertyRequest struct {
	Address        string   `json:"address" validate:"required"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	PropertyType   string   `json:"property_type" validate:"required"`
	Status         string   `json:"status,omitempty"`
	Description    string   `json:"description,omitempty"`
	ListingDate    string   `json:"listing_date,omitempty"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms      *float64 `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	SquareFeet     *int     `json:"square_feet,omitempty" validate:"omitempty,gte=0"`
	CollaboratorID *int64   `json:"collaborator_id,omitempty" validate:"omitempty,gt=0"`
}

// Validate checks the request shape.
func (r *CreatePropertyRequest) Validate() error {
	return checkShape(r)
}

// ToDomain maps the request to a new listing.
func (r *CreatePropertyRequest) ToDomain() (*property.Property, error) {
	fields := make(map[string]string)
	p := &property.Property{
		Address:        strings.TrimSpace(r.Address),
		Type:           property.Type(code(r.PropertyType)),
		Status:         property.Status(code(r.Status)),
		Description:    r.Description,
		ListingDate:    parseDate(fields, "listing_date", r.ListingDate),
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		SquareFeet:     r.SquareFeet,
		CollaboratorID: r.CollaboratorID,
	}
	if r.Price != nil {
		p.Price = domain.MoneyFromFloat(*r.Price)
	}
	if err := domain.Fail(fields); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePropertyRequest is the JSON body for PATCH /properties/{id}. Absent
// fields are left unchanged; collaborator_id 0 unassigns the listing.
type UpdatePropertyRequest struct {
	Address        *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PropertyType   *string  `json:"property_type,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Description    *string  `json:"description,omitempty"`
	ListingDate    *string  `json:"listing_date,omitempty"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms      *float64 `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	SquareFeet     *int     `json:"square_feet,omitempty" validate:"omitempty,gte=0"`
	CollaboratorID *int64   `json:"collaborator_id,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the request shape.
func (r *UpdatePropertyRequest) Validate() error {
	return checkShape(r)
}

// ToPatch maps the request to a partial update.
func (r *UpdatePropertyRequest) ToPatch() (property.Patch, error) {
	fields := make(map[string]string)
	patch := property.Patch{
		Address:        trimmed(r.Address),
		Price:          moneyPtr(r.Price),
		Type:           codePtr[property.Type](r.PropertyType),
		Status:         codePtr[property.Status](r.Status),
		Description:    r.Description,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		SquareFeet:     r.SquareFeet,
		CollaboratorID: r.CollaboratorID,
	}
	if r.ListingDate != nil {
		patch.ListingDate = parseDate(fields, "listing_date", *r.ListingDate)
	}
	return patch, domain.Fail(fields)
}

// --- Clients ---

// CreateClientRequest is the JSON body for POST /clients.
type CreateClientRequest struct {
	Name                  string  `json:"name" validate:"required"`
	Email                 string  `json:"email" validate:"required"`
	Phone                 string  `json:"phone,omitempty"`
	ClientType            string  `json:"client_type" validate:"required"`
	Notes                 string  `json:"notes,omitempty"`
	InterestedPropertyIDs []int64 `json:"interested_property_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// Validate checks the request shape.
func (r *CreateClientRequest) Validate() error {
	return checkShape(r)
}

// ToDomain maps the request to a new client.
func (r *CreateClientRequest) ToDomain() *client.Client {
	return &client.Client{
		Name:                  strings.TrimSpace(r.Name),
		Email:                 strings.TrimSpace(r.Email),
		Phone:                 r.Phone,
		Type:                  client.Type(code(r.ClientType)),
		Notes:                 r.Notes,
		InterestedPropertyIDs: r.InterestedPropertyIDs,
	}
}

// UpdateClientRequest is the JSON body for PATCH /clients/{id}. A present
// interested_property_ids replaces the whole set; [] clears it.
type UpdateClientRequest struct {
	Name                  *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email                 *string  `json:"email,omitempty" validate:"omitempty,min=1"`
	Phone                 *string  `json:"phone,omitempty"`
	ClientType            *string  `json:"client_type,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
	InterestedPropertyIDs *[]int64 `json:"interested_property_ids,omitempty"`
}

// Validate checks the request shape.
func (r *UpdateClientRequest) Validate() error {
	return checkShape(r)
}

// ToPatch maps the request to a partial update.
func (r *UpdateClientRequest) ToPatch() client.Patch {
	return client.Patch{
		Name:                  trimmed(r.Name),
		Email:                 trimmed(r.Email),
		Phone:                 r.Phone,
		Type:                  codePtr[client.Type](r.ClientType),
		Notes:                 r.Notes,
		InterestedPropertyIDs: r.InterestedPropertyIDs,
	}
}

// --- Tasks ---

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description,omitempty"`
	DueDate           string `json:"due_date" validate:"required"`
	Priority          string `json:"priority,omitempty"`
	Status            string `json:"status,omitempty"`
	AssignedTo        *int64 `json:"assigned_to,omitempty" validate:"omitempty,gt=0"`
	RelatedPropertyID *int64 `json:"related_property_id,omitempty" validate:"omitempty,gt=0"`
	ClientID          *int64 `json:"client_id,omitempty" validate:"omitempty,gt=0"`
}

// Validate checks the request shape.
func (r *CreateTaskRequest) Validate() error {
	return checkShape(r)
}

// ToDomain maps the request to a new task. A new task may not fall due on a
// calendar day before now; existing tasks can keep or move to past dates.
func (r *CreateTaskRequest) ToDomain(now time.Time) (*task.Task, error) {
	fields := make(map[string]string)
	due, ok := parseDateTime(fields, "due_date", r.DueDate)
	if ok && dayBefore(due, now) {
		fields["due_date"] = "cannot be in the past for new tasks"
	}
	if err := domain.Fail(fields); err != nil {
		return nil, err
	}
	return &task.Task{
		Title:             strings.TrimSpace(r.Title),
		Description:       r.Description,
		DueDate:           due,
		Priority:          task.Priority(code(r.Priority)),
		Status:            task.Status(code(r.Status)),
		AssignedTo:        r.AssignedTo,
		RelatedPropertyID: r.RelatedPropertyID,
		ClientID:          r.ClientID,
	}, nil
}

// UpdateTaskRequest is the JSON body for PATCH /tasks/{id}. Link fields set
// to 0 clear the link.
type UpdateTaskRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description       *string `json:"description,omitempty"`
	DueDate           *string `json:"due_date,omitempty"`
	Priority          *string `json:"priority,omitempty"`
	Status            *string `json:"status,omitempty"`
	AssignedTo        *int64  `json:"assigned_to,omitempty" validate:"omitempty,gte=0"`
	RelatedPropertyID *int64  `json:"related_property_id,omitempty" validate:"omitempty,gte=0"`
	ClientID          *int64  `json:"client_id,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the request shape.
func (r *UpdateTaskRequest) Validate() error {
	return checkShape(r)
}

// ToPatch maps the request to a partial update.
func (r *UpdateTaskRequest) ToPatch() (task.Patch, error) {
	fields := make(map[string]string)
	patch := task.Patch{
		Title:             trimmed(r.Title),
		Description:       r.Description,
		Priority:          codePtr[task.Priority](r.Priority),
		Status:            codePtr[task.Status](r.Status),
		AssignedTo:        r.AssignedTo,
		RelatedPropertyID: r.RelatedPropertyID,
		ClientID:          r.ClientID,
	}
	if r.DueDate != nil {
		if due, ok := parseDateTime(fields, "due_date", *r.DueDate); ok {
			patch.DueDate = &due
		}
	}
	return patch, domain.Fail(fields)
}

// --- Collaborators ---

// CreateCollaboratorRequest is the JSON body for POST /collaborators.
type CreateCollaboratorRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Validate checks the request shape.
func (r *CreateCollaboratorRequest) Validate() error {
	return checkShape(r)
}

// ToDomain maps the request to a new team member.
func (r *CreateCollaboratorRequest) ToDomain() *collaborator.Collaborator {
	return &collaborator.Collaborator{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: r.Phone,
		Role:  collaborator.Role(code(r.Role)),
	}
}

// UpdateCollaboratorRequest is the JSON body for PATCH /collaborators/{id}.
type UpdateCollaboratorRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,min=1"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// Validate checks the request shape.
func (r *UpdateCollaboratorRequest) Validate() error {
	return checkShape(r)
}

// ToPatch maps the request to a partial update.
func (r *UpdateCollaboratorRequest) ToPatch() collaborator.Patch {
	return collaborator.Patch{
		Name:  trimmed(r.Name),
		Email: trimmed(r.Email),
		Phone: r.Phone,
		Role:  codePtr[collaborator.Role](r.Role),
	}
}
