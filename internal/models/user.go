// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	// RoleAdmin is the Applyn staff role: store administration, metrics,
	// and support tooling.
	RoleAdmin Role = "admin"
	// RoleOwner is a paying customer who owns one or more apps.
	RoleOwner Role = "owner"
)

// User represents a dashboard user with authentication and 2FA fields.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	TOTPSecret   *string   `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Needs2FASetup returns true if an admin has not completed 2FA enrollment.
// 2FA is mandatory for staff accounts and optional for app owners.
func (u *User) Needs2FASetup() bool {
	return u.Role == RoleAdmin && !u.TOTPEnabled
}
