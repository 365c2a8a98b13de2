package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Clients never pick a role at
// registration; every new account starts as RoleShopper.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleShopper Role = "user"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShopper:
		return true
	}
	return false
}

// User is a domain entity representing a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail applies the canonical form used for storage and lookup so
// that case/whitespace variants always resolve to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
