// Package task defines the Task (reminder/to-do) entity. A task may be
// linked to a property or to a client, but never to both.
package task

import (
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

const msgBothLinks = "a task can be linked to either a property or a client, not both"

// Task is a reminder or to-do item.
type Task struct {
	ID                int64
	Title             string
	Description       string
	DueDate           time.Time
	Priority          Priority
	Status            Status
	AssignedTo        *int64
	RelatedPropertyID *int64
	ClientID          *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ApplyDefaults fills unset enumerated fields: priority Medium, status
// Pending.
func (t *Task) ApplyDefaults() {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
}

// Validate checks business rules for the Task entity, including the rule
// that a task never references both a property and a client.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	domain.RequireText(fields, "title", t.Title, domain.MaxTitleLength)
	if t.DueDate.IsZero() {
		fields["due_date"] = domain.MsgRequired
	}
	domain.CheckChoice(fields, "priority", t.Priority)
	domain.CheckChoice(fields, "status", t.Status)
	domain.CheckRefID(fields, "assigned_to", t.AssignedTo)
	domain.CheckRefID(fields, "related_property_id", t.RelatedPropertyID)
	domain.CheckRefID(fields, "client_id", t.ClientID)
	if t.RelatedPropertyID != nil && t.ClientID != nil {
		fields["links"] = msgBothLinks
	}

	return domain.Fail(fields)
}

// IsOverdue reports whether the due date is strictly before now and the task
// is neither complete nor cancelled.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate.Before(now) && !t.Status.IsTerminal()
}

// IsDueBetween reports whether an open task falls due in [now, until].
func (t *Task) IsDueBetween(now, until time.Time) bool {
	if t.Status.IsTerminal() || t.DueDate.Before(now) {
		return false
	}
	return !t.DueDate.After(until)
}

// IsHighPriority reports whether the task has High priority.
func (t *Task) IsHighPriority() bool {
	return t.Priority == PriorityHigh
}

// MarkComplete sets the status to Complete. It does not guard against
// completing an already complete or cancelled task.
func (t *Task) MarkComplete() {
	t.Status = StatusComplete
}

// MarkInProgress sets the status to InProgress. A task that was already
// completed or cancelled is left unchanged and an error is returned.
func (t *Task) MarkInProgress() error {
	if t.Status.IsTerminal() {
		return domain.NewFieldError("status", "cannot start a "+t.Status.Label()+" task")
	}
	t.Status = StatusInProgress
	return nil
}

// String returns the task title.
func (t *Task) String() string {
	return t.Title
}
