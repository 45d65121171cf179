package collaborator

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
	Role  *Role
}

// Apply copies the set fields of the patch onto c.
func (pt Patch) Apply(c *Collaborator) {
	if pt.Name != nil {
		c.Name = *pt.Name
	}
	if pt.Email != nil {
		c.Email = *pt.Email
	}
	if pt.Phone != nil {
		c.Phone = *pt.Phone
	}
	if pt.Role != nil {
		c.Role = *pt.Role
	}
}
