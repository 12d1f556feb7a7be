// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleModerator indicates a moderator role with content curation rights.
	RoleModerator Role = "moderator"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// AllRoles lists every role the system recognizes.
var AllRoles = Roles{RoleUser, RoleModerator, RoleAdmin}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return AllRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
