package domain

import (
	"strings"
	"time"
)

// Role partitions accounts. Each role lives in its own collection and has
// its own session cookie.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account models a storefront user or a back-office admin.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the secret-free view of the account.
func (a *Account) Identity() *Identity {
	return &Identity{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NormalizeEmail folds an email for case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
