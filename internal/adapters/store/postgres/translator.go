package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker/v2"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

// TranslateError maps gorm and breaker errors to domain errors. kind and id
// identify the row for the error message; id 0 omits it.
func TranslateError(err error, kind string, id int64) error {
	if err == nil {
		return nil
	}

	subject := kind
	if id != 0 {
		subject = fmt.Sprintf("%s %d", kind, id)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: email already in use: %w", subject, domain.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", subject, domain.ErrConflict)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%s: %w: %w", subject, domain.ErrValidation, err)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s: %w: %w", subject, domain.ErrUnavailable, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%s: %w", subject, err)
	}
}

// likePattern turns a free-text query into an ILIKE substring pattern with
// the LIKE metacharacters escaped.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

func toPropertyRow(p *property.Property) propertyRow {
	return propertyRow{
		ID:             p.ID,
		Address:        p.Address,
		PriceCents:     int64(p.Price),
		Type:           p.Type.String(),
		Status:         p.Status.String(),
		Description:    p.Description,
		ListingDate:    p.ListingDate,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		SquareFeet:     p.SquareFeet,
		CollaboratorID: p.CollaboratorID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *propertyRow) toDomain() property.Property {
	return property.Property{
		ID:             r.ID,
		Address:        r.Address,
		Price:          domain.Money(r.PriceCents),
		Type:           property.Type(r.Type),
		Status:         property.Status(r.Status),
		Description:    r.Description,
		ListingDate:    r.ListingDate,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		SquareFeet:     r.SquareFeet,
		CollaboratorID: r.CollaboratorID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toClientRow(c *client.Client) clientRow {
	return clientRow{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Type:      c.Type.String(),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// toDomain attaches the interest set loaded separately from client_interests.
func (r *clientRow) toDomain(interests []int64) client.Client {
	c := client.Client{
		ID:                    r.ID,
		Name:                  r.Name,
		Email:                 r.Email,
		Phone:                 r.Phone,
		Type:                  client.Type(r.Type),
		Notes:                 r.Notes,
		InterestedPropertyIDs: interests,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
	c.NormalizeInterests()
	return c
}

func toInterestRows(clientID int64, propertyIDs []int64) []interestRow {
	rows := make([]interestRow, 0, len(propertyIDs))
	for _, pid := range propertyIDs {
		rows = append(rows, interestRow{ClientID: clientID, PropertyID: pid})
	}
	return rows
}

// groupInterests indexes interest rows by client.
func groupInterests(rows []interestRow) map[int64][]int64 {
	out := make(map[int64][]int64)
	for _, r := range rows {
		out[r.ClientID] = append(out[r.ClientID], r.PropertyID)
	}
	return out
}

func toTaskRow(t *task.Task) taskRow {
	return taskRow{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		DueDate:           t.DueDate,
		Priority:          t.Priority.String(),
		Status:            t.Status.String(),
		AssignedTo:        t.AssignedTo,
		RelatedPropertyID: t.RelatedPropertyID,
		ClientID:          t.ClientID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (r *taskRow) toDomain() task.Task {
	return task.Task{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		DueDate:           r.DueDate,
		Priority:          task.Priority(r.Priority),
		Status:            task.Status(r.Status),
		AssignedTo:        r.AssignedTo,
		RelatedPropertyID: r.RelatedPropertyID,
		ClientID:          r.ClientID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toCollaboratorRow(c *collaborator.Collaborator) collaboratorRow {
	return collaboratorRow{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *collaboratorRow) toDomain() collaborator.Collaborator {
	return collaborator.Collaborator{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      collaborator.Role(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
