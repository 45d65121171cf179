package domain

import "fmt"

// User feedback message templates. Each takes the entity's display string.
const (
	msgPropertyCreated     = "Property %q created successfully!"
	msgPropertyUpdated     = "Property %q updated successfully!"
	msgPropertyDeleted     = "Property %q deleted successfully!"
	msgPropertySold        = "Property %q marked as sold"
	msgPropertyPending     = "Property %q marked as pending"
	msgClientCreated       = "Client %q has been created."
	msgClientUpdated       = "Client %q has been updated."
	msgClientDeleted       = "Client %q has been deleted."
	msgTaskCreated         = "Task %q created successfully!"
	msgTaskUpdated         = "Task %q updated successfully!"
	msgTaskDeleted         = "Task %q deleted successfully!"
	msgTaskComplete        = "Task %q marked as complete"
	msgTaskInProgress      = "Task %q marked as in progress"
	msgCollaboratorCreated = "Collaborator %q created successfully!"
	msgCollaboratorUpdated = "Collaborator %q updated successfully!"
	msgCollaboratorDeleted = "Collaborator %q deleted successfully!"
)

// Action identifies a mutation for message lookup.
type Action string

const (
	ActionCreated    Action = "created"
	ActionUpdated    Action = "updated"
	ActionDeleted    Action = "deleted"
	ActionSold       Action = "sold"
	ActionPending    Action = "pending"
	ActionComplete   Action = "complete"
	ActionInProgress Action = "in_progress"
)

// Entity kinds used in messages and logs.
const (
	KindProperty     = "property"
	KindClient       = "client"
	KindTask         = "task"
	KindCollaborator = "collaborator"
)

var messageTemplates = map[string]map[Action]string{
	KindProperty: {
		ActionCreated: msgPropertyCreated,
		ActionUpdated: msgPropertyUpdated,
		ActionDeleted: msgPropertyDeleted,
		ActionSold:    msgPropertySold,
		ActionPending: msgPropertyPending,
	},
	KindClient: {
		ActionCreated: msgClientCreated,
		ActionUpdated: msgClientUpdated,
		ActionDeleted: msgClientDeleted,
	},
	KindTask: {
		ActionCreated:    msgTaskCreated,
		ActionUpdated:    msgTaskUpdated,
		ActionDeleted:    msgTaskDeleted,
		ActionComplete:   msgTaskComplete,
		ActionInProgress: msgTaskInProgress,
	},
	KindCollaborator: {
		ActionCreated: msgCollaboratorCreated,
		ActionUpdated: msgCollaboratorUpdated,
		ActionDeleted: msgCollaboratorDeleted,
	},
}

// Message formats the feedback message for an action on an entity kind.
// Unknown combinations fall back to a generic sentence.
func Message(kind string, action Action, subject string) string {
	if tmpl, ok := messageTemplates[kind][action]; ok {
		return fmt.Sprintf(tmpl, subject)
	}
	return fmt.Sprintf("%s %q %s", kind, subject, action)
}

// DeleteBlockedMessage explains why a referenced entity cannot be deleted,
// e.g. "Cannot delete: 3 tasks still assigned".
func DeleteBlockedMessage(counts ...RefCount) string {
	msg := "Cannot delete:"
	for i, c := range counts {
		if i > 0 {
			msg += " and"
		}
		noun := c.Plural
		if c.N == 1 {
			noun = c.Singular
		}
		msg += fmt.Sprintf(" %d %s", c.N, noun)
	}
	return msg + " still assigned"
}

// RefCount is one term of a DeleteBlockedMessage.
type RefCount struct {
	N        int
	Singular string
	Plural   string
}

// TaskRefs is a RefCount for tasks.
func TaskRefs(n int) RefCount { return RefCount{N: n, Singular: "task", Plural: "tasks"} }

// PropertyRefs is a RefCount for properties.
func PropertyRefs(n int) RefCount {
	return RefCount{N: n, Singular: "property", Plural: "properties"}
}

// ClientRefs is a RefCount for clients.
func ClientRefs(n int) RefCount { return RefCount{N: n, Singular: "client", Plural: "clients"} }

// DeleteBlocked returns a Conflict error carrying DeleteBlockedMessage.
func DeleteBlocked(counts ...RefCount) error {
	return fmt.Errorf("%w: %s", ErrConflict, DeleteBlockedMessage(counts...))
}
