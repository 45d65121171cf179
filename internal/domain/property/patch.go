package property

import (
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Patch is a partial update. Nil fields are left unchanged. A CollaboratorID
// pointing at 0 unassigns the listing.
type Patch struct {
	Address        *string
	Price          *domain.Money
	Type           *Type
	Status         *Status
	Description    *string
	ListingDate    *time.Time
	Bedrooms       *int
	Bathrooms      *float64
	SquareFeet     *int
	CollaboratorID *int64
}

// Apply copies the set fields of the patch onto p.
func (pt Patch) Apply(p *Property) {
	if pt.Address != nil {
		p.Address = *pt.Address
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Type != nil {
		p.Type = *pt.Type
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.ListingDate != nil {
		d := *pt.ListingDate
		p.ListingDate = &d
	}
	if pt.Bedrooms != nil {
		v := *pt.Bedrooms
		p.Bedrooms = &v
	}
	if pt.Bathrooms != nil {
		v := *pt.Bathrooms
		p.Bathrooms = &v
	}
	if pt.SquareFeet != nil {
		v := *pt.SquareFeet
		p.SquareFeet = &v
	}
	if pt.CollaboratorID != nil {
		p.CollaboratorID = domain.RefOrNil(*pt.CollaboratorID)
	}
}
