package domain

import (
	"errors"
	"testing"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    string
		action  Action
		subject string
		want    string
	}{
		{
			name:    "property sold",
			kind:    KindProperty,
			action:  ActionSold,
			subject: "12 Elm St",
			want:    `Property "12 Elm St" marked as sold`,
		},
		{
			name:    "client created",
			kind:    KindClient,
			action:  ActionCreated,
			subject: "Jane",
			want:    `Client "Jane" has been created.`,
		},
		{
			name:    "task complete",
			kind:    KindTask,
			action:  ActionComplete,
			subject: "Call back",
			want:    `Task "Call back" marked as complete`,
		},
		{
			name:    "unknown combination",
			kind:    KindClient,
			action:  ActionSold,
			subject: "Jane",
			want:    `client "Jane" sold`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Message(tt.kind, tt.action, tt.subject); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteBlockedMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts []RefCount
		want   string
	}{
		{
			name:   "single task",
			counts: []RefCount{TaskRefs(1)},
			want:   "Cannot delete: 1 task still assigned",
		},
		{
			name:   "properties and tasks",
			counts: []RefCount{PropertyRefs(2), TaskRefs(3)},
			want:   "Cannot delete: 2 properties and 3 tasks still assigned",
		},
		{
			name:   "one client",
			counts: []RefCount{ClientRefs(1)},
			want:   "Cannot delete: 1 client still assigned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DeleteBlockedMessage(tt.counts...); got != tt.want {
				t.Errorf("DeleteBlockedMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteBlocked(t *testing.T) {
	t.Parallel()

	err := DeleteBlocked(TaskRefs(2))
	if !errors.Is(err, ErrConflict) {
		t.Errorf("errors.Is(DeleteBlocked(), ErrConflict) = false, got %v", err)
	}
}
