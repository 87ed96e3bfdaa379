package domain

import "time"

// UserRole controls what a caller may do.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

// User is the domain model for anyone who logs in: end-users who file
// tickets as well as agents and admins who work them.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStaff reports whether the role may act on other users' tickets.
func (r UserRole) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}
