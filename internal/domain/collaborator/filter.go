package collaborator

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Filter holds optional filter criteria for listing collaborators.
type Filter struct {
	Role  Role
	Query string
}

// Validate returns an error wrapping domain.ErrInvalidCriteria for an
// unknown role.
func (f Filter) Validate() error {
	if f.Role != "" && !f.Role.IsValid() {
		return domain.InvalidCriteria("role", domain.InvalidChoice(f.Role))
	}
	return nil
}

// Matches reports whether c satisfies every clause of the filter.
func (f Filter) Matches(c *Collaborator) bool {
	if f.Role != "" && c.Role != f.Role {
		return false
	}
	return domain.EqualFoldContains(f.Query, c.Name, c.Email)
}

// Sort orders collaborators by name (case-insensitive), then ID.
func Sort(cs []Collaborator) {
	slices.SortStableFunc(cs, func(a, b Collaborator) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
