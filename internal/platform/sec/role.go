// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package sec

// # Admin Roles

// Role represents the authorization level granted to an admin account.
type Role string

const (
	// Content management and profile self-service
	RoleAdmin Role = "admin"

	// Superset of admin plus admin-account lifecycle management
	RoleSuperAdmin Role = "super_admin"
)

// # Role Hierarchy

// Valid reports whether the role is one of the known admin roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AtLeastAdmin reports whether the role grants admin-level access.
func (r Role) AtLeastAdmin() bool {
	return r.Valid()
}

// IsSuperAdmin reports whether the role grants account-lifecycle management.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}
