// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular portal user. Every account holds it.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator. Granted and revoked only
	// through the role-mutation flow.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a set of Role values. Duplicates are never stored.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// With returns a copy of the set with role added, keeping set semantics.
func (rs Roles) With(role Role) Roles {
	if rs.Contains(role) {
		return slices.Clone(rs)
	}

	return append(slices.Clone(rs), role)
}

// Without returns a copy of the set with role removed.
func (rs Roles) Without(role Role) Roles {
	result := make(Roles, 0, len(rs))
	for _, r := range rs {
		if r != role {
			result = append(result, r)
		}
	}

	return result
}

// Normalized returns the set with RoleUser re-asserted and invalid or
// duplicate entries dropped. RoleUser is permanent on every account.
func (rs Roles) Normalized() Roles {
	result := Roles{RoleUser}
	for _, r := range rs {
		if r.IsValid() && !result.Contains(r) {
			result = append(result, r)
		}
	}

	return result
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
