package domain

import "time"

// UserRole access level of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid returns true if the role is recognized.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered customer or a staff member.
// The scheduling core only reads it for ownership attribution.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin returns true for staff accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
