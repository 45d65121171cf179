package collaborator

import "github.com/jsamuelsen11/realestate-crm/internal/domain"

// Role is a collaborator's position on the team.
type Role string

const (
	RoleAgent     Role = "AGENT"
	RoleManager   Role = "MANAGER"
	RoleAdmin     Role = "ADMIN"
	RoleAssistant Role = "ASSISTANT"
)

// Roles lists every role in declaration order.
var Roles = []Role{RoleAgent, RoleManager, RoleAdmin, RoleAssistant}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleManager, RoleAdmin, RoleAssistant:
		return true
	default:
		return false
	}
}

// Label returns the display label.
func (r Role) Label() string {
	switch r {
	case RoleAgent:
		return "Real Estate Agent"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Administrator"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// RoleChoices returns the role selection list.
func RoleChoices() []domain.Choice {
	return domain.ChoicesOf(Roles...)
}

// ParseRole converts a code to a Role.
func ParseRole(code string) (Role, error) {
	return domain.ParseChoice[Role](code)
}
