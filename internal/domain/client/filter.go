package client

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Filter holds optional filter criteria for listing clients.
type Filter struct {
	Type         Type
	Query        string
	InterestedIn *int64

	// Side restricts results to buyers or sellers (TypeBoth matches either
	// side). Unlike Type, a client of type Both satisfies both sides.
	Side Type
}

// Validate returns an error wrapping domain.ErrInvalidCriteria for an
// unknown client type or side.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return domain.InvalidCriteria("client_type", domain.InvalidChoice(f.Type))
	}
	if f.Side != "" && f.Side != TypeBuyer && f.Side != TypeSeller {
		return domain.InvalidCriteria("side", domain.InvalidChoice(f.Side))
	}
	return nil
}

// Matches reports whether c satisfies every clause of the filter.
func (f Filter) Matches(c *Client) bool {
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	switch f.Side {
	case TypeBuyer:
		if !c.IsBuyer() {
			return false
		}
	case TypeSeller:
		if !c.IsSeller() {
			return false
		}
	}
	if f.InterestedIn != nil && !c.IsInterestedIn(*f.InterestedIn) {
		return false
	}
	return domain.EqualFoldContains(f.Query, c.Name, c.Email)
}

// Sort orders clients by name (case-insensitive), then ID.
func Sort(cs []Client) {
	slices.SortStableFunc(cs, func(a, b Client) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
