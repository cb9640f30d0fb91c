// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the portal role carried by a staff member.
type Role string

const (
	// RoleStaff is the default role of every employee.
	RoleStaff Role = "staff"
	// RoleLead manages one or more departments.
	RoleLead Role = "lead"
	// RoleAdmin manages devices, assets and announcements.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin has every permission of admin.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleLead, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants admin permissions.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasAny reports whether at least one of the given roles is present.
func (rs Roles) HasAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// IsAdmin reports whether any of the roles grants admin permissions.
func (rs Roles) IsAdmin() bool {
	return slices.ContainsFunc(rs, Role.IsAdmin)
}

// ToStrings converts Roles to []string for JWT compatibility.
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

// Identity is the authenticated caller, passed explicitly into every use case.
type Identity struct {
	UserID uuid.UUID
	Roles  Roles
}
