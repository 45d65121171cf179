// Package client defines the buyer/seller Client entity.
package client

import (
	"fmt"
	"slices"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Client is a buyer, seller, or both. InterestedPropertyIDs references
// listings the client wants to hear about; the listings themselves are owned
// by the property aggregate.
type Client struct {
	ID                    int64
	Name                  string
	Email                 string
	Phone                 string
	Type                  Type
	Notes                 string
	InterestedPropertyIDs []int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ApplyDefaults normalizes the interest set. The client type has no default
// and must be supplied.
func (c *Client) ApplyDefaults() {
	c.NormalizeInterests()
}

// Validate checks business rules for the Client entity.
func (c *Client) Validate() error {
	fields := make(map[string]string)

	domain.RequireText(fields, "name", c.Name, domain.MaxNameLength)
	domain.CheckEmail(fields, "email", c.Email)
	domain.CheckPhone(fields, "phone", c.Phone)
	domain.CheckChoice(fields, "client_type", c.Type)
	for _, id := range c.InterestedPropertyIDs {
		if id <= 0 {
			fields["interested_property_ids"] = fmt.Sprintf("must be positive, got %d", id)
			break
		}
	}

	return domain.Fail(fields)
}

// IsBuyer reports whether the client buys (Buyer or Both).
func (c *Client) IsBuyer() bool {
	return c.Type == TypeBuyer || c.Type == TypeBoth
}

// IsSeller reports whether the client sells (Seller or Both).
func (c *Client) IsSeller() bool {
	return c.Type == TypeSeller || c.Type == TypeBoth
}

// InterestCount is the number of listings the client is interested in.
func (c *Client) InterestCount() int {
	return len(c.InterestedPropertyIDs)
}

// IsInterestedIn reports whether propertyID is in the interest set.
func (c *Client) IsInterestedIn(propertyID int64) bool {
	return slices.Contains(c.InterestedPropertyIDs, propertyID)
}

// NormalizeInterests sorts the interest set and drops duplicates.
func (c *Client) NormalizeInterests() {
	if len(c.InterestedPropertyIDs) == 0 {
		c.InterestedPropertyIDs = nil
		return
	}
	ids := slices.Clone(c.InterestedPropertyIDs)
	slices.Sort(ids)
	c.InterestedPropertyIDs = slices.Compact(ids)
}

// String returns the client's name.
func (c *Client) String() string {
	return c.Name
}
