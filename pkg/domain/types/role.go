package types

import "fmt"

// Role is the author of a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleUser,
		RoleAssistant,
		RoleSystem,
	}
}

// IsValid checks if the role is valid. Inbound histories may carry unknown
// roles; the dispatcher treats those as non-user messages rather than
// rejecting the request.
func (x Role) IsValid() bool {
	switch x {
	case RoleUser,
		RoleAssistant,
		RoleSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (x Role) String() string {
	return string(x)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
