// Package collaborator defines the team member entity that properties and
// tasks are assigned to.
package collaborator

import (
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Collaborator is an agent or staff member.
type Collaborator struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDefaults sets the role to Agent when unset.
func (c *Collaborator) ApplyDefaults() {
	if c.Role == "" {
		c.Role = RoleAgent
	}
}

// Validate checks business rules for the Collaborator entity.
func (c *Collaborator) Validate() error {
	fields := make(map[string]string)

	domain.RequireText(fields, "name", c.Name, domain.MaxNameLength)
	domain.CheckEmail(fields, "email", c.Email)
	domain.CheckPhone(fields, "phone", c.Phone)
	domain.CheckChoice(fields, "role", c.Role)

	return domain.Fail(fields)
}

// String returns the collaborator's name.
func (c *Collaborator) String() string {
	return c.Name
}

// Workload counts the open assignments of one collaborator.
type Workload struct {
	CollaboratorID int64
	Name           string
	Properties     int
	Tasks          int
}

// Total is the number of non-terminal properties plus non-terminal tasks.
func (w Workload) Total() int {
	return w.Properties + w.Tasks
}
