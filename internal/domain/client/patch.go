package client

import "slices"

// Patch is a partial update. Nil fields are left unchanged. A non-nil
// InterestedPropertyIDs replaces the whole interest set; an empty slice
// clears it.
type Patch struct {
	Name                  *string
	Email                 *string
	Phone                 *string
	Type                  *Type
	Notes                 *string
	InterestedPropertyIDs *[]int64
}

// Apply copies the set fields of the patch onto c.
func (pt Patch) Apply(c *Client) {
	if pt.Name != nil {
		c.Name = *pt.Name
	}
	if pt.Email != nil {
		c.Email = *pt.Email
	}
	if pt.Phone != nil {
		c.Phone = *pt.Phone
	}
	if pt.Type != nil {
		c.Type = *pt.Type
	}
	if pt.Notes != nil {
		c.Notes = *pt.Notes
	}
	if pt.InterestedPropertyIDs != nil {
		c.InterestedPropertyIDs = slices.Clone(*pt.InterestedPropertyIDs)
		c.NormalizeInterests()
	}
}
