package property

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Type is the kind of real estate being listed.
type Type string

const (
	TypeHouse      Type = "HOUSE"
	TypeCondo      Type = "CONDO"
	TypeTownhouse  Type = "TOWNHOUSE"
	TypeLand       Type = "LAND"
	TypeCommercial Type = "COMMERCIAL"
)

// Types lists every property type in declaration order.
var Types = []Type{TypeHouse, TypeCondo, TypeTownhouse, TypeLand, TypeCommercial}

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeHouse, TypeCondo, TypeTownhouse, TypeLand, TypeCommercial:
		return true
	default:
		return false
	}
}

// Label returns the display label.
func (t Type) Label() string {
	switch t {
	case TypeHouse:
		return "House"
	case TypeCondo:
		return "Condominium"
	case TypeTownhouse:
		return "Townhouse"
	case TypeLand:
		return "Land"
	case TypeCommercial:
		return "Commercial"
	default:
		return string(t)
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// TypeChoices returns the property type selection list.
func TypeChoices() []domain.Choice {
	return domain.ChoicesOf(Types...)
}

// ParseType converts a code to a Type.
func ParseType(code string) (Type, error) {
	return domain.ParseChoice[Type](code)
}
