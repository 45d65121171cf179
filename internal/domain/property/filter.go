package property

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Filter holds optional filter criteria for listing properties.
// Zero-value fields mean "no filter" for that dimension; set fields are ANDed.
type Filter struct {
	Status         Status
	Type           Type
	Query          string
	CollaboratorID *int64
}

// Validate returns an error wrapping domain.ErrInvalidCriteria when an
// enumerated field is set to an unknown code.
func (f Filter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return domain.InvalidCriteria("status", domain.InvalidChoice(f.Status))
	}
	if f.Type != "" && !f.Type.IsValid() {
		return domain.InvalidCriteria("property_type", domain.InvalidChoice(f.Type))
	}
	return nil
}

// Matches reports whether p satisfies every clause of the filter.
func (f Filter) Matches(p *Property) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.CollaboratorID != nil && (p.CollaboratorID == nil || *p.CollaboratorID != *f.CollaboratorID) {
		return false
	}
	return domain.EqualFoldContains(f.Query, p.Address, p.Description)
}

// Sort orders listings alphabetically by address (case-insensitive), with
// ties broken by ID.
func Sort(props []Property) {
	slices.SortStableFunc(props, func(a, b Property) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Address), strings.ToLower(b.Address)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
