// Package property defines the Property listing entity, its vocabulary, and
// the filter criteria used to query listings.
package property

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Property is a real estate listing.
type Property struct {
	ID             int64
	Address        string
	Price          domain.Money
	Type           Type
	Status         Status
	Description    string
	ListingDate    *time.Time
	Bedrooms       *int
	Bathrooms      *float64
	SquareFeet     *int
	CollaboratorID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplyDefaults fills unset enumerated fields: status Available.
func (p *Property) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusAvailable
	}
}

// Validate checks business rules for the Property entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Property) Validate() error {
	fields := make(map[string]string)

	domain.RequireText(fields, "address", p.Address, 0)
	if p.Price < 0 {
		fields["price"] = fmt.Sprintf("must not be negative, got %s", p.Price)
	} else if p.Price >= domain.MaxMoney {
		fields["price"] = fmt.Sprintf("must have at most %d digits", domain.MaxPriceDigits)
	}
	domain.CheckChoice(fields, "property_type", p.Type)
	domain.CheckChoice(fields, "status", p.Status)
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		fields["bedrooms"] = "must not be negative"
	}
	if p.Bathrooms != nil && *p.Bathrooms < 0 {
		fields["bathrooms"] = "must not be negative"
	}
	if p.SquareFeet != nil && *p.SquareFeet < 0 {
		fields["square_feet"] = "must not be negative"
	}
	domain.CheckRefID(fields, "collaborator_id", p.CollaboratorID)

	return domain.Fail(fields)
}

// ValidateListingDate rejects listing dates after the day containing now.
func (p *Property) ValidateListingDate(now time.Time) error {
	if p.ListingDate == nil {
		return nil
	}
	y, m, d := now.Date()
	endOfToday := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	if !p.ListingDate.Before(endOfToday) {
		return domain.NewFieldError("listing_date", "cannot be in the future")
	}
	return nil
}

// IsAvailable reports whether the listing is open for offers.
func (p *Property) IsAvailable() bool {
	return p.Status == StatusAvailable
}

// MarkAsSold moves the listing to Sold. Applying it to a sold listing leaves
// it unchanged. The listing must be structurally sound (valid type and
// status); otherwise nothing is changed.
func (p *Property) MarkAsSold() error {
	return p.transition(StatusSold)
}

// MarkAsPending moves the listing to Pending.
func (p *Property) MarkAsPending() error {
	return p.transition(StatusPending)
}

func (p *Property) transition(to Status) error {
	fields := make(map[string]string)
	domain.CheckChoice(fields, "status", p.Status)
	domain.CheckChoice(fields, "property_type", p.Type)
	if err := domain.Fail(fields); err != nil {
		return err
	}
	p.Status = to
	return nil
}

// String returns the listing address.
func (p *Property) String() string {
	return p.Address
}
