package client

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Type says which side of a transaction a client is on.
type Type string

const (
	TypeBuyer  Type = "BUYER"
	TypeSeller Type = "SELLER"
	TypeBoth   Type = "BOTH"
)

// Types lists every client type in declaration order.
var Types = []Type{TypeBuyer, TypeSeller, TypeBoth}

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeBuyer, TypeSeller, TypeBoth:
		return true
	default:
		return false
	}
}

// Label returns the display label.
func (t Type) Label() string {
	switch t {
	case TypeBuyer:
		return "Buyer"
	case TypeSeller:
		return "Seller"
	case TypeBoth:
		return "Buyer/Seller"
	default:
		return string(t)
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// TypeChoices returns the client type selection list.
func TypeChoices() []domain.Choice {
	return domain.ChoicesOf(Types...)
}

// ParseType converts a code to a Type.
func ParseType(code string) (Type, error) {
	return domain.ParseChoice[Type](code)
}
