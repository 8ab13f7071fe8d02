package domain

import (
	"strings"
	"time"
)

// Role identifies what an authenticated identity is allowed to do.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// DefaultRole is assigned at registration when no role is supplied.
const DefaultRole = RoleWorker

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleWorker, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole maps a raw role string to a Role. An empty string yields DefaultRole.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRole, true
	}
	r := Role(s)
	return r, r.IsValid()
}

// User models a registered identity.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the public projection of a User embedded in listings.
type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the public projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NormalizeEmail canonicalises an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
