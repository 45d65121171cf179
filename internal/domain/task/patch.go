package task

import (
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Patch is a partial update. Nil fields are left unchanged. Reference IDs
// pointing at 0 clear the link.
type Patch struct {
	Title             *string
	Description       *string
	DueDate           *time.Time
	Priority          *Priority
	Status            *Status
	AssignedTo        *int64
	RelatedPropertyID *int64
	ClientID          *int64
}

// Apply copies the set fields of the patch onto t.
func (pt Patch) Apply(t *Task) {
	if pt.Title != nil {
		t.Title = *pt.Title
	}
	if pt.Description != nil {
		t.Description = *pt.Description
	}
	if pt.DueDate != nil {
		t.DueDate = *pt.DueDate
	}
	if pt.Priority != nil {
		t.Priority = *pt.Priority
	}
	if pt.Status != nil {
		t.Status = *pt.Status
	}
	if pt.AssignedTo != nil {
		t.AssignedTo = domain.RefOrNil(*pt.AssignedTo)
	}
	if pt.RelatedPropertyID != nil {
		t.RelatedPropertyID = domain.RefOrNil(*pt.RelatedPropertyID)
	}
	if pt.ClientID != nil {
		t.ClientID = domain.RefOrNil(*pt.ClientID)
	}
}
