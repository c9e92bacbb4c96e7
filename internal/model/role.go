package model

import "time"

// RoleID uniquely identifies a role configuration
type RoleID string

// Role describes a set of permissions assignable to players
type Role struct {
	ID          RoleID
	Name        string
	Description string
	Permissions []string
	CreatedAt   time.Time
	// Default roles are seeded at startup and cannot be deleted or renamed
	IsDefault bool
}

// Seeded role ids, stable so repeated seeding is idempotent
const (
	RoleIDAdministrator RoleID = "role-administrator"
	RoleIDPlayer        RoleID = "role-player"
)

// DefaultRoles returns the roles seeded into an empty role collection
func DefaultRoles(now time.Time) []Role {
	return []Role{
		{
			ID:          RoleIDAdministrator,
			Name:        "Administrator",
			Description: "Full access to club management",
			Permissions: []string{"manage_users", "manage_finances", "manage_courts", "view_reports", "system_settings"},
			CreatedAt:   now,
			IsDefault:   true,
		},
		{
			ID:          RoleIDPlayer,
			Name:        "Player",
			Description: "Standard club member",
			Permissions: []string{"view_profile", "book_courts", "view_schedule"},
			CreatedAt:   now,
			IsDefault:   true,
		},
	}
}
